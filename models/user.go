package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username       string `gorm:"uniqueIndex;not null"`
    Password       string `gorm:"not null"`
    Email          string
    Name           string
    BirthDate      *time.Time
    ProfilePicture []byte // raw image blob, served back as image/jpeg
    Men            uint8  // 0 = female, 1 = male (set during the second registration step)
}
