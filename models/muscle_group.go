package models

import (
    "time"

    "gorm.io/gorm"
)

// MuscleGroup is the starting-lift snapshot taken during the second
// registration step: up to four named groups with a weight each.
type MuscleGroup struct {
    gorm.Model
    Name1 string
    Kg1   int
    Name2 string
    Kg2   int
    Name3 string
    Kg3   int
    Name4 string
    Kg4   int
    Date  *time.Time
}
