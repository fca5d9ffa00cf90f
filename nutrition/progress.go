package nutrition

import (
	"github.com/armetcal/Meal-Tracker/models"
)

// ProgressForDate computes the calorie attainment ratio for one date,
// clamped to [0,1]. A date with no logs yields 0.0; so does a malformed
// date string, which callers are expected to have validated already.
//
// 0.0 is deliberately overloaded: "nothing logged" and "logged but zero
// calories" are indistinguishable here. Callers that need the distinction
// check for the presence of logs themselves (the progress endpoint reports
// a separate logged flag).
func ProgressForDate(date string, logs []models.MealLog, recipes []models.Recipe, goals []models.DailyGoal) float64 {
	logged := false
	for _, l := range logs {
		if l.Date == date {
			logged = true
			break
		}
	}
	if !logged {
		return 0.0
	}

	day, err := ParseDate(date)
	if err != nil {
		return 0.0
	}

	goal := ResolveGoal(WeekdayName(day), goals)
	totals := TotalsForDate(date, logs, recipes)

	return clampRatio(totals.Calories, goal.CalorieGoal())
}

func clampRatio(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := actual / target
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
