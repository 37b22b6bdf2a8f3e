package models

import (
	"time"

	"gorm.io/gorm"
)

// HydrationRecord accumulates consumed liters against a target, one row per
// (user, calendar date). Date is truncated to local midnight.
type HydrationRecord struct {
	gorm.Model
	UserID              uint      `gorm:"index;not null"`
	Date                time.Time `gorm:"index;not null"`
	TargetLiters        float64   `gorm:"default:2.5"`
	ConsumedLiters      float64
	WaterIntakeSchedule string `gorm:"type:text"` // JSON blob from the planner, stored verbatim
}
