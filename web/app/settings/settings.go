package settings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/middleware"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/view"
)

const savedMessage = "Configurações salvas com sucesso!"

// WeeklyGoalOptions populates the weekly-goal select, 1 through 7.
var WeeklyGoalOptions = []int{1, 2, 3, 4, 5, 6, 7}

// PageHandler renders the settings form.
func PageHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)

		data := gin.H{
			"User":        user,
			"Settings":    st.Settings(user.ID),
			"GoalOptions": WeeklyGoalOptions,
		}
		if ctx.Query("saved") == "1" {
			data["Saved"] = savedMessage
		}
		ctx.HTML(http.StatusOK, "settings.html", data)
	}
}

// SaveHandler applies the whole form at once. The acknowledgment is
// presentation only; nothing is written beyond the in-memory record.
func SaveHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		cfg := st.Settings(user.ID)

		cfg.Notifications = checkbox(ctx, "notifications")
		cfg.WorkoutReminders = checkbox(ctx, "workout_reminders")
		cfg.WeeklyGoals = checkbox(ctx, "weekly_goals")
		cfg.SoundEffects = checkbox(ctx, "sound_effects")
		cfg.DarkMode = checkbox(ctx, "dark_mode")
		cfg.MotivationalQuotes = checkbox(ctx, "motivational_quotes")
		cfg.RestDayReminder = checkbox(ctx, "rest_day_reminder")

		if units := ctx.PostForm("units"); units == "metric" || units == "imperial" {
			cfg.Units = units
		}
		if t := ctx.PostForm("reminder_time"); t != "" {
			cfg.ReminderTime = t
		}
		if goal, err := strconv.Atoi(ctx.PostForm("weekly_goal")); err == nil && goal >= 1 && goal <= 7 {
			cfg.WeeklyGoal = goal
		}

		st.SetSettings(user.ID, cfg)

		ctx.Redirect(http.StatusSeeOther, view.Settings.Path()+"?saved=1")
	}
}

// ResetHandler restores the hardcoded defaults. The confirmation prompt
// lives in the template.
func ResetHandler(st *store.MemoryStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := middleware.SessionUser(ctx)
		st.ResetSettings(user.ID)

		ctx.Redirect(http.StatusSeeOther, view.Settings.Path())
	}
}

func checkbox(ctx *gin.Context, name string) bool {
	return ctx.PostForm(name) == "on"
}
