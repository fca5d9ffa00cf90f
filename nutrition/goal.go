package nutrition

import (
	"github.com/armetcal/Meal-Tracker/models"
)

// System-wide fallback targets, used whenever a weekday has no stored goal.
// The startup seeder inserts these same values; this resolver never writes.
const (
	DefaultProteinGoal = 150.0 // g
	DefaultCarbsGoal   = 200.0 // g
	DefaultFatGoal     = 50.0  // g
)

// ResolveGoal returns the stored goal for weekday, or a synthetic default
// when none exists. Side-effect free: the synthetic record is not persisted.
func ResolveGoal(weekday string, goals []models.DailyGoal) models.DailyGoal {
	for _, g := range goals {
		if g.DayOfWeek == weekday {
			return g
		}
	}
	return models.DailyGoal{
		DayOfWeek: weekday,
		Protein:   DefaultProteinGoal,
		Carbs:     DefaultCarbsGoal,
		Fat:       DefaultFatGoal,
	}
}
