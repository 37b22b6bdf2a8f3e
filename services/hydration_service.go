package services

import (
	"errors"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"

	"gorm.io/gorm"
)

const (
	DefaultWaterTargetLiters = 2.5
	// DefaultSipLiters is the amount credited when a user dismisses a
	// hydration reminder with "just drank".
	DefaultSipLiters = 0.25
)

var ErrNonPositiveIntake = errors.New("intake amount must be positive")

// dayStartLocal truncates a timestamp to local midnight. All per-day rows
// (hydration, plan dates) key on this.
func dayStartLocal(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GetTodayHydration returns today's record, or an unsaved default-valued
// record when the user has not logged anything yet. Reading never creates rows.
func GetTodayHydration(userID uint) (*models.HydrationRecord, error) {
	today := dayStartLocal(time.Now())
	var rec models.HydrationRecord
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.HydrationRecord{
			UserID:       userID,
			Date:         today,
			TargetLiters: DefaultWaterTargetLiters,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// AddIntake credits liters against today's record, creating it on first log.
func AddIntake(userID uint, liters float64) (*models.HydrationRecord, error) {
	if liters <= 0 {
		return nil, ErrNonPositiveIntake
	}
	rec, err := GetTodayHydration(userID)
	if err != nil {
		return nil, err
	}
	rec.ConsumedLiters += liters
	if rec.ID == 0 {
		err = config.DB.Create(rec).Error
	} else {
		err = config.DB.Save(rec).Error
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// HydrationPercent reports progress toward the target as a 0..1 fraction,
// capped at 1 so overdrinking never shows past 100%.
func HydrationPercent(rec *models.HydrationRecord) float64 {
	if rec == nil || rec.TargetLiters <= 0 {
		return 0
	}
	pct := rec.ConsumedLiters / rec.TargetLiters
	if pct > 1 {
		return 1
	}
	return pct
}

// EnsureHydrationRecord seeds the record for a given day with the planner's
// target and schedule. An existing row keeps its consumed amount; only the
// target and schedule are refreshed.
func EnsureHydrationRecord(userID uint, date time.Time, targetLiters float64, schedule string) error {
	if targetLiters <= 0 {
		targetLiters = DefaultWaterTargetLiters
	}
	day := dayStartLocal(date)
	rec := models.HydrationRecord{
		UserID: userID,
		Date:   day,
	}
	return config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(models.HydrationRecord{
			TargetLiters:        targetLiters,
			WaterIntakeSchedule: schedule,
		}).
		FirstOrCreate(&rec).Error
}
