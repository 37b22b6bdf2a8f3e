package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanController struct {
	Generator *services.PlanGenerator
}

func NewPlanController(gen *services.PlanGenerator) *PlanController {
	return &PlanController{Generator: gen}
}

// GeneratePlan runs the full generation workflow. Partial child-write
// failures come back as warnings alongside the plan rather than failing
// the request.
func (pc *PlanController) GeneratePlan(c *gin.Context) {
	uid := c.GetUint("userID")

	plan, results, err := pc.Generator.GenerateAndSave(uid)
	if err != nil {
		if errors.Is(err, services.ErrProfileIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	var warnings []services.ChildWriteResult
	for _, r := range results {
		if !r.OK() {
			warnings = append(warnings, r)
		}
	}

	resp := gin.H{"message": "diet plan generated", "plan": plan}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusCreated, resp)
}

func (pc *PlanController) GetActivePlan(c *gin.Context) {
	uid := c.GetUint("userID")

	plan, err := services.GetActivePlan(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoActivePlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active diet plan", "needs_generation": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan": plan,
		"days": services.FormatForDisplay(plan),
		"tip":  services.RandomNutritionTip(plan),
	})
}

func (pc *PlanController) GetPlanByID(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	plan, err := services.GetPlanByID(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan, "days": services.FormatForDisplay(plan)})
}

// GetDailyTotals returns aggregate macros for one plan day. Days outside
// the plan give a zero record, not an error.
func (pc *PlanController) GetDailyTotals(c *gin.Context) {
	uid := c.GetUint("userID")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day"})
		return
	}

	plan, err := services.GetActivePlan(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoActivePlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active diet plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	days := services.FormatForDisplay(plan)
	c.JSON(http.StatusOK, gin.H{"day": day, "totals": services.ComputeDailyTotals(days, day)})
}

// ExportDay streams one plan day as a text attachment.
func (pc *PlanController) ExportDay(c *gin.Context) {
	uid := c.GetUint("userID")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day"})
		return
	}

	plan, err := services.GetActivePlan(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoActivePlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active diet plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	days := services.FormatForDisplay(plan)
	filename, content := services.ExportDay(days, day, time.Now())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// CurrentMeal resolves "what should I eat now" from the active plan and the
// server clock.
func (pc *PlanController) CurrentMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	plan, err := services.GetActivePlan(uid)
	if err != nil {
		if errors.Is(err, services.ErrNoActivePlan) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active diet plan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	meals := services.TodaysMeals(plan, now)
	if len(meals) == 0 {
		c.JSON(http.StatusOK, gin.H{"current": nil, "next": nil, "message": "plan does not cover today"})
		return
	}

	current, next := services.SelectMeals(meals, now)
	c.JSON(http.StatusOK, gin.H{"current": current, "next": next})
}

func (pc *PlanController) CompleteMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var input struct {
		Rating   *int   `json:"rating"`
		Feedback string `json:"feedback"`
	}
	// Body is optional; a bare POST just checks the meal off.
	_ = c.ShouldBindJSON(&input)

	entry, err := services.CompleteMeal(uid, uint(id), input.Rating, input.Feedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal completed", "log": entry})
}
