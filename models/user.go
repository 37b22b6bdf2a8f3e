package models

import (
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null" json:"-"`
	Name           string
	Height         float64 // cm
	Weight         float64 // kg
	Age            int
	Gender         string         `gorm:"size:16"`
	DietPreference DietPreference `gorm:"size:32"`
	Goal           Goal           `gorm:"size:16"`
	ActivityLevel  ActivityLevel  `gorm:"size:32"`
	MealsPerDay    int            `gorm:"default:3"`
	ProfilePic     string
	ResetToken     string    `json:"-"`
	ResetTokenExp  time.Time `json:"-"`
}
