package controllers

import (
	"errors"
	"net/http"

	"github.com/naveen2624/personalized-diet-recommendation/services"

	"github.com/gin-gonic/gin"
)

type HydrationController struct {
	Reminder *services.HydrationReminder
}

func NewHydrationController(reminder *services.HydrationReminder) *HydrationController {
	return &HydrationController{Reminder: reminder}
}

func (hc *HydrationController) GetToday(c *gin.Context) {
	uid := c.GetUint("userID")

	rec, err := services.GetTodayHydration(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":  rec,
		"percent": services.HydrationPercent(rec),
	})
}

func (hc *HydrationController) AddIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Liters float64 `json:"liters" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.AddIntake(uid, input.Liters)
	if err != nil {
		if errors.Is(err, services.ErrNonPositiveIntake) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":  rec,
		"percent": services.HydrationPercent(rec),
	})
}

// DismissReminder acknowledges a hydration prompt. Dismissal counts a 0.25L
// sip toward today's total and restarts the user's reminder timer.
func (hc *HydrationController) DismissReminder(c *gin.Context) {
	uid := c.GetUint("userID")

	rec, err := hc.Reminder.RecordDismissal(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "reminder dismissed",
		"record":  rec,
		"percent": services.HydrationPercent(rec),
	})
}
