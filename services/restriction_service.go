package services

import (
	"errors"
	"strings"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
)

var ErrEmptyRestriction = errors.New("restriction label cannot be empty")

// NormalizeRestriction lower-cases and trims a label so "Peanuts " and
// "peanuts" are the same restriction.
func NormalizeRestriction(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func ListRestrictions(userID uint) ([]models.DietaryRestriction, error) {
	var restrictions []models.DietaryRestriction
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&restrictions).Error
	return restrictions, err
}

// AddRestriction inserts a normalized label for the user. Adding a label the
// user already has is a no-op that returns the existing row.
func AddRestriction(userID uint, label string, restrictionType string) (*models.DietaryRestriction, error) {
	normalized := NormalizeRestriction(label)
	if normalized == "" {
		return nil, ErrEmptyRestriction
	}
	if restrictionType != "allergy" {
		restrictionType = "dislike"
	}

	var existing models.DietaryRestriction
	err := config.DB.
		Where("user_id = ? AND restriction = ?", userID, normalized).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}

	entry := &models.DietaryRestriction{
		UserID:      userID,
		Restriction: normalized,
		Type:        restrictionType,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveRestriction deletes one restriction, scoped to the user so nobody can
// remove another user's rows by id.
func RemoveRestriction(userID, restrictionID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", restrictionID, userID).
		Delete(&models.DietaryRestriction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("restriction not found")
	}
	return nil
}

// AllergiesCSV joins restriction labels into the comma-separated form the
// planner expects, or "None" when the user has no restrictions.
func AllergiesCSV(restrictions []models.DietaryRestriction) string {
	if len(restrictions) == 0 {
		return "None"
	}
	labels := make([]string, 0, len(restrictions))
	for _, r := range restrictions {
		labels = append(labels, r.Restriction)
	}
	return strings.Join(labels, ", ")
}
