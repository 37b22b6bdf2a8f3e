package services

import (
	"context"
	"sync"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/models"
)

const hydrationReminderInterval = 2 * time.Hour

// HydrationReminder prompts connected users to drink water when two hours
// pass without any logged intake. Dismissing a prompt counts as one sip and
// restarts the user's timer.
type HydrationReminder struct {
	hub      *RealtimeHub
	interval time.Duration

	mu         sync.Mutex
	lastPrompt map[uint]time.Time
}

func NewHydrationReminder(hub *RealtimeHub) *HydrationReminder {
	return &HydrationReminder{
		hub:        hub,
		interval:   hydrationReminderInterval,
		lastPrompt: make(map[uint]time.Time),
	}
}

// Start runs the sweep loop until the context is cancelled. A user seen for
// the first time is seeded with the current time, not prompted immediately.
func (r *HydrationReminder) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				r.sweep(now)
			}
		}
	}()
}

func (r *HydrationReminder) sweep(now time.Time) {
	connected := r.hub.ConnectedUsers()

	r.mu.Lock()
	defer r.mu.Unlock()

	online := make(map[uint]struct{}, len(connected))
	for _, id := range connected {
		online[id] = struct{}{}
		last, seen := r.lastPrompt[id]
		if !seen {
			r.lastPrompt[id] = now
			continue
		}
		if now.Sub(last) >= r.interval {
			r.lastPrompt[id] = now
			EmitAlert(id, "hydration", "Time to drink some water! Stay hydrated.")
		}
	}

	// Forget users who disconnected so they get a fresh timer next session.
	for id := range r.lastPrompt {
		if _, ok := online[id]; !ok {
			delete(r.lastPrompt, id)
		}
	}
}

// RecordDismissal handles a user acknowledging the reminder: credits one sip
// against today's hydration record and resets their timer.
func (r *HydrationReminder) RecordDismissal(userID uint) (*models.HydrationRecord, error) {
	r.mu.Lock()
	r.lastPrompt[userID] = time.Now()
	r.mu.Unlock()
	return AddIntake(userID, DefaultSipLiters)
}
