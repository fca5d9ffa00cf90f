package services

import (
	"errors"
	"fmt"

	"github.com/armetcal/Meal-Tracker/models"
	"github.com/armetcal/Meal-Tracker/nutrition"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DailyGoalService struct {
	db     *gorm.DB
	bus    *ChangeBus
	logger *zap.Logger
}

func NewDailyGoalService(db *gorm.DB, bus *ChangeBus, logger *zap.Logger) *DailyGoalService {
	return &DailyGoalService{db: db, bus: bus, logger: logger}
}

type GoalRequest struct {
	Protein *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs   *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat     *float64 `json:"fat" binding:"omitempty,gte=0"`
}

// Upsert stores the goal for one weekday, creating or replacing the single
// row keyed by the weekday name. Missing macros default to 0.
func (s *DailyGoalService) Upsert(dayOfWeek string, req GoalRequest) (*models.DailyGoal, error) {
	if !nutrition.IsWeekday(dayOfWeek) {
		return nil, fmt.Errorf("unknown weekday %q", dayOfWeek)
	}

	goal := models.DailyGoal{
		DayOfWeek: dayOfWeek,
		Protein:   deref(req.Protein, 0),
		Carbs:     deref(req.Carbs, 0),
		Fat:       deref(req.Fat, 0),
	}

	var existing models.DailyGoal
	err := s.db.Where("day_of_week = ?", dayOfWeek).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		s.bus.Notify(TopicDailyGoals, "created", goal)
	case err != nil:
		return nil, err
	default:
		if err := s.db.Save(&goal).Error; err != nil {
			return nil, err
		}
		s.bus.Notify(TopicDailyGoals, "updated", goal)
	}
	return &goal, nil
}

func (s *DailyGoalService) List() ([]models.DailyGoal, error) {
	var goals []models.DailyGoal
	err := s.db.Find(&goals).Error
	return goals, err
}

// GetForDay returns the stored goal for a weekday, or the synthetic default
// when none exists. Never inserts; only SeedDefaults writes fallback rows.
func (s *DailyGoalService) GetForDay(dayOfWeek string) (*models.DailyGoal, error) {
	if !nutrition.IsWeekday(dayOfWeek) {
		return nil, fmt.Errorf("unknown weekday %q", dayOfWeek)
	}
	goals, err := s.List()
	if err != nil {
		return nil, err
	}
	goal := nutrition.ResolveGoal(dayOfWeek, goals)
	return &goal, nil
}

// SeedDefaults inserts the 150/200/50 fallback for all seven weekdays when
// the table is empty. Idempotent: a non-empty table is left untouched.
func (s *DailyGoalService) SeedDefaults() error {
	var count int64
	if err := s.db.Model(&models.DailyGoal{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, day := range nutrition.Weekdays() {
		goal := models.DailyGoal{
			DayOfWeek: day,
			Protein:   nutrition.DefaultProteinGoal,
			Carbs:     nutrition.DefaultCarbsGoal,
			Fat:       nutrition.DefaultFatGoal,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return err
		}
	}
	if s.logger != nil {
		s.logger.Info("default_goals_seeded", zap.Int("weekdays", len(nutrition.Weekdays())))
	}
	return nil
}
