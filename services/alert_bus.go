package services

import (
	"fmt"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an alert row, broadcasts it over the user's websockets
// and sends a push notification. Safe to call before InitAlertDeps; it just
// does nothing.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Nutri.ai", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// DismissAlert flags an alert as handled, scoped to its owner.
func DismissAlert(userID, alertID uint) error {
	if _alert.db == nil {
		return nil
	}
	return _alert.db.Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("dismissed", true).Error
}

// RecentAlerts lists the user's newest alerts, capped at limit.
func RecentAlerts(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := _alert.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
