package models

import (
    "time"

    "gorm.io/gorm"
)

// One Diet row per submission. Each meal slot is an optional JSON
// array of food items; absent slots stay NULL.
type Diet struct {
    gorm.Model
    Breakfast *string `gorm:"type:text"`
    Lunch     *string `gorm:"type:text"`
    Diner     *string `gorm:"type:text"`
    Dessert   *string `gorm:"type:text"`
    FoodDate  time.Time `gorm:"index"` // UTC, date only
}
