package controllers

import (
	"net/http"
	"strconv"

	"github.com/naveen2624/personalized-diet-recommendation/services"

	"github.com/gin-gonic/gin"
)

func ListRestrictions(c *gin.Context) {
	uid := c.GetUint("userID")

	restrictions, err := services.ListRestrictions(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restrictions": restrictions})
}

func AddRestriction(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Restriction string `json:"restriction" binding:"required"`
		Type        string `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddRestriction(uid, input.Restriction, input.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"restriction": entry})
}

func RemoveRestriction(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restriction id"})
		return
	}

	if err := services.RemoveRestriction(uid, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "restriction removed"})
}
