package nutrition

import (
	"testing"
	"time"

	"github.com/armetcal/Meal-Tracker/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func recipe(id uint, protein, carbs, fat float64) models.Recipe {
	return models.Recipe{
		Model:   gorm.Model{ID: id},
		Name:    "test recipe",
		Protein: protein,
		Carbs:   carbs,
		Fat:     fat,
	}
}

func log(recipeID uint, servings float64, date string) models.MealLog {
	return models.MealLog{RecipeID: recipeID, Servings: servings, Date: date}
}

func TestCaloriesPerServing(t *testing.T) {
	r := recipe(1, 25, 15, 10)
	assert.InDelta(t, 250.0, r.CaloriesPerServing(), 1e-9) // 100 + 60 + 90
}

func TestWeekdayName(t *testing.T) {
	// 2024-03-10 is a Sunday, 2024-03-11 a Monday.
	sun, err := ParseDate("2024-03-10")
	assert.NoError(t, err)
	assert.Equal(t, "Sunday", WeekdayName(sun))

	mon, err := ParseDate("2024-03-11")
	assert.NoError(t, err)
	assert.Equal(t, "Monday", WeekdayName(mon))

	// All seven mapped, round trip through a full week.
	seen := map[string]bool{}
	for i := 0; i < 7; i++ {
		seen[WeekdayName(sun.AddDate(0, 0, i))] = true
	}
	assert.Len(t, seen, 7)
}

func TestTotalsForDateEmpty(t *testing.T) {
	totals := TotalsForDate("2024-03-10", nil, nil)
	assert.Equal(t, Totals{}, totals)
}

func TestTotalsForDateFiltersByExactDate(t *testing.T) {
	recipes := []models.Recipe{recipe(1, 10, 10, 10)}
	logs := []models.MealLog{
		log(1, 1, "2024-03-10"),
		log(1, 1, "2024-03-11"), // different date, ignored
	}
	totals := TotalsForDate("2024-03-10", logs, recipes)
	assert.InDelta(t, 10.0, totals.Protein, 1e-9)
	assert.InDelta(t, 170.0, totals.Calories, 1e-9)
}

func TestTotalsForDateOrphanedLogContributesZero(t *testing.T) {
	recipes := []models.Recipe{recipe(1, 10, 10, 10)}
	logs := []models.MealLog{
		log(1, 2, "2024-03-10"),
		log(99, 5, "2024-03-10"), // recipe deleted
	}
	totals := TotalsForDate("2024-03-10", logs, recipes)
	assert.InDelta(t, 20.0, totals.Protein, 1e-9)
	assert.InDelta(t, 340.0, totals.Calories, 1e-9)
}

func TestTotalsForDateOrderInvariant(t *testing.T) {
	recipes := []models.Recipe{
		recipe(1, 25, 15, 10),
		recipe(2, 5, 50, 2),
	}
	logs := []models.MealLog{
		log(1, 1.5, "2024-03-10"),
		log(2, 0.5, "2024-03-10"),
		log(1, 2, "2024-03-10"),
	}
	reversed := []models.MealLog{logs[2], logs[1], logs[0]}

	a := TotalsForDate("2024-03-10", logs, recipes)
	b := TotalsForDate("2024-03-10", reversed, recipes)
	assert.InDelta(t, a.Protein, b.Protein, 1e-9)
	assert.InDelta(t, a.Carbs, b.Carbs, 1e-9)
	assert.InDelta(t, a.Fat, b.Fat, 1e-9)
	assert.InDelta(t, a.Calories, b.Calories, 1e-9)
}

func TestResolveGoalStored(t *testing.T) {
	goals := []models.DailyGoal{
		{DayOfWeek: "Monday", Protein: 120, Carbs: 180, Fat: 40},
	}
	g := ResolveGoal("Monday", goals)
	assert.Equal(t, 120.0, g.Protein)
	assert.InDelta(t, 1560.0, g.CalorieGoal(), 1e-9)
}

func TestResolveGoalDefault(t *testing.T) {
	g := ResolveGoal("Tuesday", nil)
	assert.Equal(t, "Tuesday", g.DayOfWeek)
	assert.Equal(t, 150.0, g.Protein)
	assert.Equal(t, 200.0, g.Carbs)
	assert.Equal(t, 50.0, g.Fat)
	assert.InDelta(t, 1850.0, g.CalorieGoal(), 1e-9)
}

func TestProgressForDateNoLogs(t *testing.T) {
	p := ProgressForDate("2024-03-10", nil, nil, nil)
	assert.Equal(t, 0.0, p)
}

func TestProgressForDateEndToEnd(t *testing.T) {
	// Recipe: 25/15/10 -> 250 kcal/serving. Two logs on a Sunday with
	// servings 1.0 and 2.0 -> 750 kcal against a 1850 kcal goal.
	recipes := []models.Recipe{recipe(1, 25, 15, 10)}
	logs := []models.MealLog{
		log(1, 1, "2024-03-10"),
		log(1, 2, "2024-03-10"),
	}
	goals := []models.DailyGoal{
		{DayOfWeek: "Sunday", Protein: 150, Carbs: 200, Fat: 50},
	}

	totals := TotalsForDate("2024-03-10", logs, recipes)
	assert.InDelta(t, 75.0, totals.Protein, 1e-9)
	assert.InDelta(t, 45.0, totals.Carbs, 1e-9)
	assert.InDelta(t, 30.0, totals.Fat, 1e-9)
	assert.InDelta(t, 750.0, totals.Calories, 1e-9)

	p := ProgressForDate("2024-03-10", logs, recipes, goals)
	assert.InDelta(t, 750.0/1850.0, p, 1e-9)
}

func TestProgressForDateMonotonicAndClamped(t *testing.T) {
	recipes := []models.Recipe{recipe(1, 0, 0, 100)} // 900 kcal/serving
	goals := []models.DailyGoal{
		{DayOfWeek: "Sunday", Protein: 150, Carbs: 200, Fat: 50}, // 1850 kcal
	}

	var logs []models.MealLog
	prev := 0.0
	for i := 0; i < 8; i++ {
		logs = append(logs, log(1, 1, "2024-03-10"))
		p := ProgressForDate("2024-03-10", logs, recipes, goals)
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 1.0)
		prev = p
	}
	// 8 servings = 7200 kcal, roughly 390% of goal: saturates at 1.0.
	assert.Equal(t, 1.0, prev)
}

func TestMonthGridLeapYear(t *testing.T) {
	grid := MonthGrid(2024, time.February, nil, nil, nil)
	assert.Len(t, grid.Days, 29)
	assert.Contains(t, grid.Days, "2024-02-29")
	assert.NotContains(t, grid.Days, "2024-03-01")
	assert.Equal(t, time.Thursday, grid.FirstWeekday)

	grid = MonthGrid(2023, time.February, nil, nil, nil)
	assert.Len(t, grid.Days, 28)
	assert.NotContains(t, grid.Days, "2023-02-29")
}

func TestMonthGridRatios(t *testing.T) {
	recipes := []models.Recipe{recipe(1, 25, 15, 10)}
	logs := []models.MealLog{
		log(1, 1, "2024-03-10"),
		log(1, 2, "2024-03-10"),
	}
	grid := MonthGrid(2024, time.March, logs, recipes, nil)
	assert.Len(t, grid.Days, 31)
	assert.InDelta(t, 750.0/1850.0, grid.Days["2024-03-10"], 1e-9)
	assert.Equal(t, 0.0, grid.Days["2024-03-11"])
	assert.Equal(t, time.Friday, grid.FirstWeekday)
}
