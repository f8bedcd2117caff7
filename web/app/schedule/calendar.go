package schedule

import (
	"time"

	"github.com/pedrovoltarelli/Zeni-Workout-app/platform/store"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Weekdays are the grid column headers, Sunday first.
var Weekdays = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// MonthName returns the Portuguese name for a month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// DaysInMonth counts the days of a Gregorian month. Day zero of the
// following month normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday of the 1st, 0 = Sunday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// PrevMonth steps back one month, wrapping January into December of the
// previous year.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps forward one month, wrapping December into January of
// the next year.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// MonthCount is the number of marked days inside one displayed month.
// Recomputed on every render, never cached.
func MonthCount(marks map[store.DayKey]bool, year int, month time.Month) int {
	count := 0
	for key, marked := range marks {
		if marked && key.Year == year && key.Month == month {
			count++
		}
	}
	return count
}

// Cell is one slot of the calendar grid. Day 0 is a leading blank
// before the 1st.
type Cell struct {
	Day    int
	Marked bool
	Today  bool
}

// Grid lays out the displayed month as a flat 7-column slice.
func Grid(marks map[store.DayKey]bool, year int, month time.Month, today time.Time) []Cell {
	cells := make([]Cell, 0, 42)
	for i := 0; i < FirstWeekday(year, month); i++ {
		cells = append(cells, Cell{})
	}

	for day := 1; day <= DaysInMonth(year, month); day++ {
		cells = append(cells, Cell{
			Day:    day,
			Marked: marks[store.DayKey{Year: year, Month: month, Day: day}],
			Today:  day == today.Day() && month == today.Month() && year == today.Year(),
		})
	}
	return cells
}
