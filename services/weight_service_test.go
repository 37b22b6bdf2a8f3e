package services

import (
	"testing"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
)

func TestAddWeightEntrySyncsProfile(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	entry, err := AddWeightEntry(user.ID, 68.5, "after vacation")
	if err != nil {
		t.Fatalf("AddWeightEntry: %v", err)
	}
	if entry.Weight != 68.5 {
		t.Errorf("entry weight = %v, want 68.5", entry.Weight)
	}

	var check models.UserProfile
	if err := config.DB.First(&check, user.ID).Error; err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if check.Weight != 68.5 {
		t.Errorf("profile weight = %v, want synced to 68.5", check.Weight)
	}
}

func TestAddWeightEntryRejectsNonPositive(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	for _, w := range []float64{0, -3} {
		if _, err := AddWeightEntry(user.ID, w, ""); err == nil {
			t.Errorf("AddWeightEntry(%v) expected error", w)
		}
	}
}

func TestGetWeightHistoryNewestFirst(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	for _, w := range []float64{72, 71, 70} {
		if _, err := AddWeightEntry(user.ID, w, ""); err != nil {
			t.Fatalf("AddWeightEntry: %v", err)
		}
	}

	history, err := GetWeightHistory(user.ID, 2)
	if err != nil {
		t.Fatalf("GetWeightHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d entries, want 2 (limit)", len(history))
	}
	if history[0].Weight != 70 || history[1].Weight != 71 {
		t.Errorf("history = [%v, %v], want [70, 71]", history[0].Weight, history[1].Weight)
	}

	chart := ChronologicalWeights(history)
	if chart[0].Weight != 71 || chart[1].Weight != 70 {
		t.Errorf("chart = [%v, %v], want [71, 70]", chart[0].Weight, chart[1].Weight)
	}
	// Input must stay newest-first.
	if history[0].Weight != 70 {
		t.Errorf("ChronologicalWeights mutated its input")
	}
}
