package models

// DailyGoal holds the nutrient targets for one weekday.
// The weekday name is the primary key, so at most one row per weekday.
type DailyGoal struct {
    DayOfWeek string  `gorm:"primaryKey" json:"day_of_week"` // "Monday".."Sunday"
    Protein   float64 `json:"protein"` // e.g. 150 g
    Carbs     float64 `json:"carbs"`   // e.g. 200 g
    Fat       float64 `json:"fat"`     // e.g. 50 g
}

// CalorieGoal is derived with the same 4/4/9 formula as Recipe.
func (g DailyGoal) CalorieGoal() float64 {
    return g.Protein*4 + g.Carbs*4 + g.Fat*9
}
