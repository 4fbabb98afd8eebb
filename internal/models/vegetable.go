package models

// MealType distinguishes lunch and dinner servings.
type MealType string

const (
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)

// Valid reports whether m is a known meal type.
func (m MealType) Valid() bool {
	return m == MealLunch || m == MealDinner
}

// Vegetable is one dish of the mess catalog.
type Vegetable struct {
	ID       uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string   `json:"name" gorm:"type:varchar(100);not null"`
	MealType MealType `json:"mealType" gorm:"column:meal_type;type:varchar(16);index;not null"`
	ImageURL *string  `json:"imageUrl" gorm:"column:image_url"`
}
