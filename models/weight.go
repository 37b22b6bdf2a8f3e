package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightEntry is append-only history; queries return most-recent-first and
// the chart layer reverses into chronological order.
type WeightEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`
	Weight float64   `gorm:"not null"`
	Notes  string
}
