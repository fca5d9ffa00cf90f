package models

import (
    "gorm.io/gorm"
)

// Recipe is a reusable meal definition with per-serving macros (grams).
type Recipe struct {
    gorm.Model
    Name        string  `gorm:"not null" json:"name"`
    Protein     float64 `json:"protein"` // g per serving
    Carbs       float64 `json:"carbs"`   // g per serving
    Fat         float64 `json:"fat"`     // g per serving
    ServingSize string  `json:"serving_size"` // e.g. "1 bowl", defaults to "1 serving"
    ImagePath   *string `json:"image_path,omitempty"` // opaque reference, never dereferenced here
}

// CaloriesPerServing is always derived (4/4/9), never stored.
func (r Recipe) CaloriesPerServing() float64 {
    return r.Protein*4 + r.Carbs*4 + r.Fat*9
}
