package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"

	"gorm.io/gorm"
)

// ErrNoActivePlan signals "needs generation", not a hard failure.
var ErrNoActivePlan = errors.New("no active diet plan")

const defaultNutritionTip = "Stay consistent with your meal timing for better results!"

func planPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("DailyPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("DailyPlans.Meals").
		Preload("DailyPlans.Meals.FoodItems").
		Preload("DailyPlans.Meals.Ingredients").
		Preload("DailyPlans.Meals.RecipeSteps")
}

// GetActivePlan fetches the user's single active plan with the full
// day -> meal -> child-record tree plus the plan-level collections.
func GetActivePlan(userID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := planPreloads(config.DB).
		Preload("SnackOptions").
		Preload("Supplements").
		Preload("NutritionTips").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActivePlan
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetPlanByID fetches any plan (active or not) by id, scoped to the user.
func GetPlanByID(userID, planID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := planPreloads(config.DB).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// TodaysMeals picks the meal list of the daily plan whose date is today.
// An empty result means the plan does not cover today.
func TodaysMeals(plan *models.DietPlan, now time.Time) []models.Meal {
	today := dayStartLocal(now)
	for _, d := range plan.DailyPlans {
		if dayStartLocal(d.PlanDate).Equal(today) {
			return d.Meals
		}
	}
	return nil
}

// RandomNutritionTip returns one of the plan's tips at random, or a default
// line when the plan has none.
func RandomNutritionTip(plan *models.DietPlan) string {
	if plan == nil || len(plan.NutritionTips) == 0 {
		return defaultNutritionTip
	}
	return plan.NutritionTips[rand.Intn(len(plan.NutritionTips))].Tip
}

// CompleteMeal marks a meal completed and appends a completion-log row with
// the user's optional rating and feedback.
func CompleteMeal(userID, mealID uint, rating *int, feedback string) (*models.MealCompletionLog, error) {
	if err := config.DB.Model(&models.Meal{}).
		Where("id = ?", mealID).
		Update("is_completed", true).Error; err != nil {
		return nil, err
	}

	entry := &models.MealCompletionLog{
		UserID:   userID,
		MealID:   mealID,
		Rating:   rating,
		Feedback: feedback,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
