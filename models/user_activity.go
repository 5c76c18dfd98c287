package models

import (
    "gorm.io/gorm"
)

// UserActivity joins a user to at most one "open" diet, workout,
// muscle-group and rank reference at a time. A user accumulates one
// row per completed diet+workout pairing cycle; retrieval must
// aggregate across all of them.
type UserActivity struct {
    gorm.Model
    UserID        uint `gorm:"index;not null"`
    MuscleGroupID *uint
    DietID        *uint
    WorkoutID     *uint
    RankID        *uint
}
