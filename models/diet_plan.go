package models

import (
	"time"

	"gorm.io/gorm"
)

// DietPlan is the root of a generated 7-day plan. At most one plan per user
// is active; generating a new plan deactivates all earlier ones.
type DietPlan struct {
	gorm.Model
	UserID             uint `gorm:"index;not null"`
	PlanName           string
	StartDate          time.Time `gorm:"not null"`
	EndDate            time.Time
	DailyCalorieTarget int
	BMR                float64
	TDEE               float64
	CalorieAdjustment  int
	ProteinGrams       float64
	ProteinPercentage  float64
	CarbsGrams         float64
	CarbsPercentage    float64
	FatsGrams          float64
	FatsPercentage     float64
	IsActive           bool `gorm:"index"`

	DailyPlans    []DailyMealPlan            `gorm:"foreignKey:DietPlanID"`
	SnackOptions  []SnackOption              `gorm:"foreignKey:DietPlanID"`
	Supplements   []SupplementRecommendation `gorm:"foreignKey:DietPlanID"`
	NutritionTips []NutritionTip             `gorm:"foreignKey:DietPlanID"`
}

// DailyMealPlan is one of the plan's seven days. PlanDate is the plan start
// date offset by DayNumber-1.
type DailyMealPlan struct {
	gorm.Model
	DietPlanID         uint `gorm:"index;not null"`
	UserID             uint `gorm:"index;not null"`
	DayNumber          int  `gorm:"not null"` // 1..7
	DayName            string
	PlanDate           time.Time `gorm:"index"`
	DailyTotalCalories int

	Meals []Meal `gorm:"foreignKey:DailyMealPlanID"`
}

// Meal carries a slot label (Breakfast, Lunch, ...) distinct from its clock
// time. MealTime is "HH:MM"; meals within a day are presented sorted by it.
type Meal struct {
	gorm.Model
	DailyMealPlanID   uint   `gorm:"index;not null"`
	MealType          string `gorm:"size:32"`
	MealTime          string `gorm:"size:8"`
	MealName          string
	TotalMealCalories int
	CookingTime       string `gorm:"size:32"`
	DifficultyLevel   string `gorm:"size:32"`
	Notes             string `gorm:"type:text"`
	IsCompleted       bool

	FoodItems   []FoodItem   `gorm:"foreignKey:MealID"`
	Ingredients []Ingredient `gorm:"foreignKey:MealID"`
	RecipeSteps []RecipeStep `gorm:"foreignKey:MealID"`
}

// FoodItem rows are the only per-meal records carrying macro fields; display
// macros for a meal are summed from these, never from Ingredients.
type FoodItem struct {
	gorm.Model
	MealID   uint `gorm:"index;not null"`
	ItemName string
	Quantity string `gorm:"size:64"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

type Ingredient struct {
	gorm.Model
	MealID         uint `gorm:"index;not null"`
	IngredientName string
	Quantity       string `gorm:"size:64"`
	Unit           string `gorm:"size:32"`
}

type RecipeStep struct {
	gorm.Model
	MealID      uint `gorm:"index;not null"`
	StepNumber  int
	Instruction string `gorm:"type:text"`
}

type SnackOption struct {
	gorm.Model
	DietPlanID  uint `gorm:"index;not null"`
	SnackName   string
	Ingredients string `gorm:"type:text"`
	Calories    int
	Protein     float64
}

type SupplementRecommendation struct {
	gorm.Model
	DietPlanID     uint `gorm:"index;not null"`
	SupplementName string
	Dosage         string `gorm:"size:64"`
	Timing         string `gorm:"size:64"`
	Benefit        string `gorm:"type:text"`
}

type NutritionTip struct {
	gorm.Model
	DietPlanID uint   `gorm:"index;not null"`
	Tip        string `gorm:"type:text"`
}

// MealCompletionLog records that a user checked off a meal, with optional
// rating/feedback for later analysis.
type MealCompletionLog struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	MealID   uint `gorm:"index;not null"`
	Rating   *int
	Feedback string `gorm:"type:text"`
}
