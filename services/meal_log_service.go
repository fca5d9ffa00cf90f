package services

import (
	"errors"
	"time"

	"github.com/armetcal/Meal-Tracker/models"
	"github.com/armetcal/Meal-Tracker/nutrition"

	"gorm.io/gorm"
)

var ErrMealLogNotFound = errors.New("meal log not found")

type MealLogService struct {
	db  *gorm.DB
	bus *ChangeBus
}

func NewMealLogService(db *gorm.DB, bus *ChangeBus) *MealLogService {
	return &MealLogService{db: db, bus: bus}
}

type MealLogRequest struct {
	RecipeID uint     `json:"recipe_id" binding:"required"`
	Servings *float64 `json:"servings" binding:"omitempty,gte=0"`
	Date     string   `json:"date"` // "2006-01-02", defaults to today
}

// Log records a consumption event. Servings defaults to 1.0 when absent,
// the date to today; the recipe must exist at log time (it may be deleted
// later, which orphans the row without cascading).
func (s *MealLogService) Log(req MealLogRequest) (*models.MealLog, error) {
	var r models.Recipe
	if err := s.db.First(&r, req.RecipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = nutrition.FormatDate(time.Now())
	} else if _, err := nutrition.ParseDate(date); err != nil {
		return nil, err
	}

	servings := 1.0
	if req.Servings != nil {
		servings = *req.Servings
	}

	log := &models.MealLog{
		RecipeID:  req.RecipeID,
		Servings:  servings,
		Date:      date,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	s.bus.Notify(TopicMealLogs, "created", log)
	return log, nil
}

func (s *MealLogService) Delete(id uint) error {
	res := s.db.Delete(&models.MealLog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealLogNotFound
	}
	s.bus.Notify(TopicMealLogs, "deleted", map[string]uint{"id": id})
	return nil
}

func (s *MealLogService) ListAll() ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.Order("date DESC, timestamp DESC").Find(&logs).Error
	return logs, err
}

// ListByDate returns one day's entries, most recent first.
func (s *MealLogService) ListByDate(date string) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.
		Where("date = ?", date).
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}

func (s *MealLogService) ListRecent(limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = 3
	}
	var logs []models.MealLog
	err := s.db.
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
