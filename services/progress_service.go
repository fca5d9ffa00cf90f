package services

import (
	"fmt"
	"time"

	"github.com/armetcal/Meal-Tracker/models"
	"github.com/armetcal/Meal-Tracker/nutrition"

	"gorm.io/gorm"
)

// ProgressService is the read side of the coordinator: it snapshots the three
// tables and hands them to the pure aggregation functions. It never writes.
type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// GoalView is a resolved goal with its derived calorie target attached.
type GoalView struct {
	DayOfWeek   string  `json:"day_of_week"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	CalorieGoal float64 `json:"calorie_goal"`
}

func goalView(g models.DailyGoal) GoalView {
	return GoalView{
		DayOfWeek:   g.DayOfWeek,
		Protein:     g.Protein,
		Carbs:       g.Carbs,
		Fat:         g.Fat,
		CalorieGoal: g.CalorieGoal(),
	}
}

type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// DateProgress is everything a daily screen renders for one date. Logged
// distinguishes "nothing logged" from a genuine 0% day, since Ratio alone
// cannot.
type DateProgress struct {
	Date      string                   `json:"date"`
	DayOfWeek string                   `json:"day_of_week"`
	Logged    bool                     `json:"logged"`
	Goal      GoalView                 `json:"goal"`
	Totals    nutrition.Totals         `json:"totals"`
	Ratio     float64                  `json:"ratio"`
	Macros    map[string]MacroProgress `json:"macros"`
}

// ForDate computes the daily view: resolved goal, totals, calorie ratio and
// a per-macro breakdown.
func (s *ProgressService) ForDate(date string) (*DateProgress, error) {
	day, err := nutrition.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	logs, recipes, goals, err := s.snapshot(s.db.Where("date = ?", date))
	if err != nil {
		return nil, err
	}

	weekday := nutrition.WeekdayName(day)
	goal := nutrition.ResolveGoal(weekday, goals)
	totals := nutrition.TotalsForDate(date, logs, recipes)
	ratio := nutrition.ProgressForDate(date, logs, recipes, goals)

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return &DateProgress{
		Date:      date,
		DayOfWeek: weekday,
		Logged:    len(logs) > 0,
		Goal:      goalView(goal),
		Totals:    totals,
		Ratio:     ratio,
		Macros: map[string]MacroProgress{
			"protein":  {Consumed: totals.Protein, Goal: goal.Protein, Percent: pct(totals.Protein, goal.Protein)},
			"carbs":    {Consumed: totals.Carbs, Goal: goal.Carbs, Percent: pct(totals.Carbs, goal.Carbs)},
			"fat":      {Consumed: totals.Fat, Goal: goal.Fat, Percent: pct(totals.Fat, goal.Fat)},
			"calories": {Consumed: totals.Calories, Goal: goal.CalorieGoal(), Percent: ratio},
		},
	}, nil
}

// MonthOverview paints the calendar: one ratio per day of the month plus the
// layout hints the grid needs (Sunday-first leading blanks).
type MonthOverview struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	Days          map[string]float64 `json:"days"`
	FirstWeekday  string             `json:"first_weekday"`
	LeadingBlanks int                `json:"leading_blanks"`
	DaysTracked   int                `json:"days_tracked"`
}

func (s *ProgressService) Month(year int, month time.Month) (*MonthOverview, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	logs, recipes, goals, err := s.snapshot(s.db.Where("date LIKE ?", prefix+"%"))
	if err != nil {
		return nil, err
	}

	grid := nutrition.MonthGrid(year, month, logs, recipes, goals)

	tracked := map[string]struct{}{}
	for _, l := range logs {
		tracked[l.Date] = struct{}{}
	}

	return &MonthOverview{
		Year:          year,
		Month:         int(month),
		Days:          grid.Days,
		FirstWeekday:  nutrition.WeekdayName(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)),
		LeadingBlanks: int(grid.FirstWeekday), // Sunday-first grid, Sunday == 0
		DaysTracked:   len(tracked),
	}, nil
}

// snapshot loads the meal logs selected by logQuery together with the full
// recipe and goal collections, the input triple every core function takes.
func (s *ProgressService) snapshot(logQuery *gorm.DB) ([]models.MealLog, []models.Recipe, []models.DailyGoal, error) {
	var logs []models.MealLog
	if err := logQuery.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, nil, nil, err
	}
	var recipes []models.Recipe
	if err := s.db.Find(&recipes).Error; err != nil {
		return nil, nil, nil, err
	}
	var goals []models.DailyGoal
	if err := s.db.Find(&goals).Error; err != nil {
		return nil, nil, nil, err
	}
	return logs, recipes, goals, nil
}
