package schedule

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
)

// PageHandler renders the calendar for the selected month, defaulting
// to the current one.
func PageHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		now := time.Now()

		year, month := selectedMonth(ctx, now)
		marks := st.MarkedDays(user.ID)

		prevYear, prevMonth := PrevMonth(year, month)
		nextYear, nextMonth := NextMonth(year, month)

		ctx.HTML(http.StatusOK, "schedule.html", gin.H{
			"User":       user,
			"Year":       year,
			"Month":      int(month),
			"MonthName":  MonthName(month),
			"Weekdays":   Weekdays,
			"Cells":      Grid(marks, year, month, now),
			"MonthCount": MonthCount(marks, year, month),
			"PrevURL":    monthURL(prevYear, prevMonth),
			"NextURL":    monthURL(nextYear, nextMonth),
		})
	}
}

// ToggleHandler flips one day's completed flag and returns to the same
// month.
func ToggleHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		now := time.Now()

		year, month := postedMonth(ctx, now)
		day, err := strconv.Atoi(ctx.PostForm("day"))
		if err != nil {
			ctx.String(http.StatusBadRequest, "invalid day")
			return
		}

		st.ToggleDay(user.ID, store.DayKey{Year: year, Month: month, Day: day})

		ctx.Redirect(http.StatusSeeOther, monthURL(year, month))
	}
}

func selectedMonth(ctx *gin.Context, now time.Time) (int, time.Month) {
	year, errY := strconv.Atoi(ctx.Query("year"))
	monthNum, errM := strconv.Atoi(ctx.Query("month"))
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 {
		return now.Year(), now.Month()
	}
	return year, time.Month(monthNum)
}

func postedMonth(ctx *gin.Context, now time.Time) (int, time.Month) {
	year, errY := strconv.Atoi(ctx.PostForm("year"))
	monthNum, errM := strconv.Atoi(ctx.PostForm("month"))
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 {
		return now.Year(), now.Month()
	}
	return year, time.Month(monthNum)
}

func monthURL(year int, month time.Month) string {
	return fmt.Sprintf("%s?year=%d&month=%d", view.Schedule.Path(), year, int(month))
}
