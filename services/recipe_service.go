package services

import (
	"errors"

	"github.com/armetcal/Meal-Tracker/models"

	"gorm.io/gorm"
)

var ErrRecipeNotFound = errors.New("recipe not found")

type RecipeService struct {
	db  *gorm.DB
	bus *ChangeBus
}

func NewRecipeService(db *gorm.DB, bus *ChangeBus) *RecipeService {
	return &RecipeService{db: db, bus: bus}
}

type RecipeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Protein     *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fat         *float64 `json:"fat" binding:"omitempty,gte=0"`
	ServingSize string   `json:"serving_size"`
	ImagePath   *string  `json:"image_path"`
}

// apply copies a request onto a recipe. Missing macros coerce to 0, a blank
// serving size to "1 serving" — malformed/absent numeric input never reaches
// the aggregation layer.
func (req RecipeRequest) apply(r *models.Recipe) {
	r.Name = req.Name
	r.Protein = deref(req.Protein, 0)
	r.Carbs = deref(req.Carbs, 0)
	r.Fat = deref(req.Fat, 0)
	r.ServingSize = req.ServingSize
	if r.ServingSize == "" {
		r.ServingSize = "1 serving"
	}
	r.ImagePath = req.ImagePath
}

func (s *RecipeService) Create(req RecipeRequest) (*models.Recipe, error) {
	var r models.Recipe
	req.apply(&r)
	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}
	s.bus.Notify(TopicRecipes, "created", r)
	return &r, nil
}

// Update is a full-record replace; only ID and CreatedAt survive.
func (s *RecipeService) Update(id uint, req RecipeRequest) (*models.Recipe, error) {
	var r models.Recipe
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	req.apply(&r)
	if err := s.db.Save(&r).Error; err != nil {
		return nil, err
	}
	s.bus.Notify(TopicRecipes, "updated", r)
	return &r, nil
}

// Delete removes the recipe only. Meal logs that reference it are kept and
// resolve to a zero contribution when aggregated.
func (s *RecipeService) Delete(id uint) error {
	res := s.db.Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	s.bus.Notify(TopicRecipes, "deleted", map[string]uint{"id": id})
	return nil
}

func (s *RecipeService) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var r models.Recipe
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &r, nil
}

func deref(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
