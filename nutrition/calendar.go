package nutrition

import (
	"time"

	"github.com/armetcal/Meal-Tracker/models"
)

// MonthProgress maps every date of one month to its progress ratio, plus the
// weekday of day 1 so a presentation grid can compute its leading blanks.
type MonthProgress struct {
	Days         map[string]float64 `json:"days"`
	FirstWeekday time.Weekday       `json:"first_weekday"` // Sunday == 0
}

// MonthGrid evaluates ProgressForDate for every day of the given month,
// 1..last day inclusive (leap-aware), and nothing from adjacent months.
func MonthGrid(year int, month time.Month, logs []models.MealLog, recipes []models.Recipe, goals []models.DailyGoal) MonthProgress {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := daysInMonth(year, month)

	out := MonthProgress{
		Days:         make(map[string]float64, days),
		FirstWeekday: first.Weekday(),
	}
	for day := 1; day <= days; day++ {
		date := FormatDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		out.Days[date] = ProgressForDate(date, logs, recipes, goals)
	}
	return out
}

// daysInMonth relies on time.Date normalization: day 0 of the next month is
// the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
