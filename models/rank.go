package models

import (
    "gorm.io/gorm"
)

// Rank carries a user's cumulative point total and the tier name
// derived from it. Points only ever grow.
type Rank struct {
    gorm.Model
    RankName string `gorm:"not null"`
    Points   int    `gorm:"not null"`
}
