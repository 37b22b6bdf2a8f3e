package controllers

import (
	"net/http"
	"strconv"

	"github.com/naveen2624/personalized-diet-recommendation/services"

	"github.com/gin-gonic/gin"
)

func AddWeightEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Weight float64 `json:"weight" binding:"required"`
		Notes  string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddWeightEntry(uid, input.Weight, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetWeightHistory returns recent entries newest first, plus a chronological
// copy ready for charting.
func GetWeightHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	entries, err := services.GetWeightHistory(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": entries,
		"chart":   services.ChronologicalWeights(entries),
	})
}
