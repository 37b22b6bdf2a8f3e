package services

import (
	"math"
	"testing"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
)

func TestGetTodayHydrationDefault(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	rec, err := GetTodayHydration(user.ID)
	if err != nil {
		t.Fatalf("GetTodayHydration: %v", err)
	}
	if rec.ID != 0 {
		t.Errorf("reading must not persist a row, got id %d", rec.ID)
	}
	if rec.TargetLiters != DefaultWaterTargetLiters {
		t.Errorf("target = %v, want %v", rec.TargetLiters, DefaultWaterTargetLiters)
	}
	if rec.ConsumedLiters != 0 {
		t.Errorf("consumed = %v, want 0", rec.ConsumedLiters)
	}
}

func TestAddIntakeAccumulates(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	if _, err := AddIntake(user.ID, 0.25); err != nil {
		t.Fatalf("first AddIntake: %v", err)
	}
	rec, err := AddIntake(user.ID, 0.25)
	if err != nil {
		t.Fatalf("second AddIntake: %v", err)
	}

	if math.Abs(rec.ConsumedLiters-0.5) > 1e-9 {
		t.Errorf("consumed = %v, want 0.5", rec.ConsumedLiters)
	}

	var count int64
	if err := config.DB.Model(&models.HydrationRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected one row per day, got %d", count)
	}
}

func TestAddIntakeRejectsNonPositive(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	for _, liters := range []float64{0, -0.5} {
		if _, err := AddIntake(user.ID, liters); err == nil {
			t.Errorf("AddIntake(%v) expected error", liters)
		}
	}
}

func TestHydrationPercent(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.HydrationRecord
		want float64
	}{
		{"nil record", nil, 0},
		{"zero target", &models.HydrationRecord{TargetLiters: 0, ConsumedLiters: 1}, 0},
		{"halfway", &models.HydrationRecord{TargetLiters: 2.5, ConsumedLiters: 1.25}, 0.5},
		{"capped at full", &models.HydrationRecord{TargetLiters: 2, ConsumedLiters: 5}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HydrationPercent(tt.rec); got != tt.want {
				t.Errorf("HydrationPercent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureHydrationRecordKeepsConsumed(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	if _, err := AddIntake(user.ID, 1.0); err != nil {
		t.Fatalf("AddIntake: %v", err)
	}

	if err := EnsureHydrationRecord(user.ID, time.Now(), 3.0, `{"morning":"1L"}`); err != nil {
		t.Fatalf("EnsureHydrationRecord: %v", err)
	}

	rec, err := GetTodayHydration(user.ID)
	if err != nil {
		t.Fatalf("GetTodayHydration: %v", err)
	}
	if rec.ConsumedLiters != 1.0 {
		t.Errorf("consumed = %v, want 1.0 preserved", rec.ConsumedLiters)
	}
	if rec.TargetLiters != 3.0 {
		t.Errorf("target = %v, want refreshed to 3.0", rec.TargetLiters)
	}
	if rec.WaterIntakeSchedule == "" {
		t.Errorf("schedule not stored")
	}
}

func TestDayStartLocal(t *testing.T) {
	in := time.Date(2026, 3, 10, 18, 45, 12, 999, time.Local)
	got := dayStartLocal(in)
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("dayStartLocal = %v, want %v", got, want)
	}
}
