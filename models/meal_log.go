package models

import (
    "gorm.io/gorm"
)

// MealLog is one consumption event: n servings of a recipe attributed to a
// civil date. RecipeID may dangle if the recipe is deleted later; aggregation
// resolves that to a zero contribution.
type MealLog struct {
    gorm.Model
    RecipeID  uint    `gorm:"index" json:"recipe_id"`
    Servings  float64 `json:"servings"`
    Date      string  `gorm:"index;type:varchar(10)" json:"date"` // "2024-01-15", independent of Timestamp
    Timestamp int64   `json:"timestamp"`                          // epoch ms, same-day ordering only
}
