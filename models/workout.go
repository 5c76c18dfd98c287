package models

import (
    "time"

    "gorm.io/gorm"
)

// One Workout row per submission. WorkoutData holds the serialized
// per-exercise JSON array; rows are never updated in place.
type Workout struct {
    gorm.Model
    WorkoutData string    `gorm:"type:text"`
    WorkoutDate time.Time `gorm:"index"` // UTC, date only
}
