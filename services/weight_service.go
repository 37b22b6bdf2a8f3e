package services

import (
	"errors"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
)

var ErrInvalidWeight = errors.New("weight must be positive")

// AddWeightEntry appends a weight measurement and keeps the profile's current
// weight in step with the latest entry.
func AddWeightEntry(userID uint, weight float64, notes string) (*models.WeightEntry, error) {
	if weight <= 0 {
		return nil, ErrInvalidWeight
	}
	entry := &models.WeightEntry{
		UserID: userID,
		Date:   dayStartLocal(time.Now()),
		Weight: weight,
		Notes:  notes,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.UserProfile{}).
		Where("id = ?", userID).
		Update("weight", weight).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// GetWeightHistory returns the most recent entries, newest first.
func GetWeightHistory(userID uint, limit int) ([]models.WeightEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.WeightEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// ChronologicalWeights reverses a newest-first history into chart order
// without mutating the input.
func ChronologicalWeights(entries []models.WeightEntry) []models.WeightEntry {
	out := make([]models.WeightEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
