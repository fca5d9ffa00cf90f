package nutrition

import (
	"github.com/armetcal/Meal-Tracker/models"
)

// Totals is the accumulated nutrient intake for one date.
// Calories follow the 4/4/9 rule of Recipe.CaloriesPerServing.
type Totals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// TotalsForDate sums the macro contribution of every log entry attributed to
// date (exact string equality). A log whose recipe no longer exists
// contributes nothing; that is the documented orphan behavior, not an error.
// Accumulation is commutative, so input order never changes the result.
func TotalsForDate(date string, logs []models.MealLog, recipes []models.Recipe) Totals {
	byID := make(map[uint]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	var t Totals
	for _, l := range logs {
		if l.Date != date {
			continue
		}
		r, ok := byID[l.RecipeID]
		if !ok {
			continue // orphaned log, recipe was deleted
		}
		t.Protein += r.Protein * l.Servings
		t.Carbs += r.Carbs * l.Servings
		t.Fat += r.Fat * l.Servings
		t.Calories += r.CaloriesPerServing() * l.Servings
	}
	return t
}
