package models

import "gorm.io/gorm"

// DietaryRestriction is owned by a single user. Labels are stored lower-cased
// and trimmed; the service layer refuses duplicates per user.
type DietaryRestriction struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Restriction string `gorm:"size:64;not null"`
	Type        string `gorm:"size:20;default:dislike"` // "dislike" | "allergy"
}
