package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"

	"gorm.io/gorm"
)

var ErrProfileIncomplete = errors.New("profile needs weight, height and age before generating a plan")

// ChildWriteResult reports the outcome of one best-effort child-collection
// write during plan persistence. A failed child write does not fail the
// workflow; callers inspect these to surface partial-success warnings.
type ChildWriteResult struct {
	Collection string `json:"collection"`
	MealID     uint   `json:"meal_id,omitempty"`
	Count      int    `json:"count"`
	Error      string `json:"error,omitempty"`
}

func (r ChildWriteResult) OK() bool { return r.Error == "" }

type PlanGenerator struct {
	planner *PlannerClient
}

func NewPlanGenerator(pc *PlannerClient) *PlanGenerator {
	return &PlanGenerator{planner: pc}
}

// GenerateAndSave runs the whole generation workflow for a user: build the
// request from their profile and restrictions, call the planner, then persist
// the response as the sole active plan. Parent rows (plan, day, meal) must
// exist before their children; child collections are written best-effort.
func (g *PlanGenerator) GenerateAndSave(userID uint) (*models.DietPlan, []ChildWriteResult, error) {
	var user models.UserProfile
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, nil, fmt.Errorf("user profile not found: %w", err)
	}
	if user.Weight <= 0 || user.Height <= 0 || user.Age <= 0 {
		return nil, nil, ErrProfileIncomplete
	}

	restrictions, err := ListRestrictions(userID)
	if err != nil {
		return nil, nil, err
	}

	mealsPerDay := user.MealsPerDay
	if mealsPerDay == 0 {
		mealsPerDay = 3
	}

	req := PlanRequest{
		Goal:           user.Goal.APIValue(),
		DietPreference: user.DietPreference.APIValue(),
		Age:            user.Age,
		Gender:         user.Gender,
		Weight:         user.Weight,
		Height:         user.Height,
		ActivityLevel:  user.ActivityLevel.APIValue(),
		Allergies:      AllergiesCSV(restrictions),
		Dislikes:       "None",
		MealsPerDay:    mealsPerDay,
	}

	// A planner failure aborts everything; nothing has been deactivated yet.
	resp, err := g.planner.GeneratePlan(req)
	if err != nil {
		return nil, nil, err
	}

	start := dayStartLocal(time.Now())
	plan := &models.DietPlan{
		UserID:             userID,
		PlanName:           fmt.Sprintf("Diet Plan - %s", start.Format("1/2/2006")),
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, 6),
		DailyCalorieTarget: int(math.Round(float64(resp.DailyCalorieTarget))),
		BMR:                float64(resp.BMR),
		TDEE:               float64(resp.TDEE),
		CalorieAdjustment:  int(math.Round(float64(resp.CalorieAdjustment))),
		ProteinGrams:       float64(resp.MacronutrientBreakdown.ProteinGrams),
		ProteinPercentage:  float64(resp.MacronutrientBreakdown.ProteinPercentage),
		CarbsGrams:         float64(resp.MacronutrientBreakdown.CarbsGrams),
		CarbsPercentage:    float64(resp.MacronutrientBreakdown.CarbsPercentage),
		FatsGrams:          float64(resp.MacronutrientBreakdown.FatsGrams),
		FatsPercentage:     float64(resp.MacronutrientBreakdown.FatsPercentage),
		IsActive:           true,
	}

	// Deactivate-then-insert in one transaction so a concurrent generation
	// cannot leave two active plans.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DietPlan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save diet plan: %w", err)
	}

	var results []ChildWriteResult

	for _, day := range resp.MealPlan {
		daily := models.DailyMealPlan{
			DietPlanID:         plan.ID,
			UserID:             userID,
			DayNumber:          int(day.Day),
			DayName:            day.DayName,
			PlanDate:           start.AddDate(0, 0, int(day.Day)-1),
			DailyTotalCalories: int(math.Round(float64(day.DailyTotalCalories))),
		}
		if err := config.DB.Create(&daily).Error; err != nil {
			return plan, results, fmt.Errorf("failed to save day %d: %w", int(day.Day), err)
		}

		for _, m := range day.Meals {
			meal := models.Meal{
				DailyMealPlanID:   daily.ID,
				MealType:          m.MealType,
				MealTime:          m.Time,
				MealName:          m.MealName,
				TotalMealCalories: int(math.Round(float64(m.TotalMealCalories))),
				CookingTime:       m.CookingTime,
				DifficultyLevel:   m.DifficultyLevel,
				Notes:             m.Notes,
			}
			if err := config.DB.Create(&meal).Error; err != nil {
				return plan, results, fmt.Errorf("failed to save meal %q: %w", m.MealName, err)
			}

			results = append(results, g.saveFoodItems(meal.ID, m.FoodItems))
			results = append(results, g.saveIngredients(meal.ID, m.Ingredients))
			results = append(results, g.saveRecipeSteps(meal.ID, m.RecipeSteps))
		}
	}

	results = append(results, g.saveSnacks(plan.ID, resp.SnackOptions))
	results = append(results, g.saveSupplements(plan.ID, resp.SupplementRecommendations))
	results = append(results, g.saveTips(plan.ID, resp.NutritionTips))
	results = append(results, g.initHydration(userID, start, resp.HydrationGuidelines))

	return plan, results, nil
}

func childResult(collection string, mealID uint, count int, err error) ChildWriteResult {
	r := ChildWriteResult{Collection: collection, MealID: mealID, Count: count}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

func (g *PlanGenerator) saveFoodItems(mealID uint, items []PlanFoodItem) ChildWriteResult {
	if len(items) == 0 {
		return childResult("food_items", mealID, 0, nil)
	}
	rows := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, models.FoodItem{
			MealID:   mealID,
			ItemName: it.Item,
			Quantity: it.Quantity,
			Calories: float64(it.Calories),
			Protein:  float64(it.Protein),
			Carbs:    float64(it.Carbs),
			Fats:     float64(it.Fats),
		})
	}
	return childResult("food_items", mealID, len(rows), config.DB.Create(&rows).Error)
}

func (g *PlanGenerator) saveIngredients(mealID uint, ings []PlanIngredient) ChildWriteResult {
	if len(ings) == 0 {
		return childResult("ingredients", mealID, 0, nil)
	}
	rows := make([]models.Ingredient, 0, len(ings))
	for _, ing := range ings {
		rows = append(rows, models.Ingredient{
			MealID:         mealID,
			IngredientName: ing.Ingredient,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
		})
	}
	return childResult("ingredients", mealID, len(rows), config.DB.Create(&rows).Error)
}

func (g *PlanGenerator) saveRecipeSteps(mealID uint, steps []PlanRecipeStep) ChildWriteResult {
	if len(steps) == 0 {
		return childResult("recipe_steps", mealID, 0, nil)
	}
	rows := make([]models.RecipeStep, 0, len(steps))
	for _, st := range steps {
		rows = append(rows, models.RecipeStep{
			MealID:      mealID,
			StepNumber:  int(st.StepNumber),
			Instruction: st.Instruction,
		})
	}
	return childResult("recipe_steps", mealID, len(rows), config.DB.Create(&rows).Error)
}

func (g *PlanGenerator) saveSnacks(planID uint, snacks []PlanSnack) ChildWriteResult {
	if len(snacks) == 0 {
		return childResult("snack_options", 0, 0, nil)
	}
	rows := make([]models.SnackOption, 0, len(snacks))
	for _, s := range snacks {
		rows = append(rows, models.SnackOption{
			DietPlanID:  planID,
			SnackName:   s.SnackName,
			Ingredients: s.Ingredients,
			Calories:    int(math.Round(float64(s.Calories))),
			Protein:     float64(s.Protein),
		})
	}
	return childResult("snack_options", 0, len(rows), config.DB.Create(&rows).Error)
}

func (g *PlanGenerator) saveSupplements(planID uint, supps []PlanSupplement) ChildWriteResult {
	if len(supps) == 0 {
		return childResult("supplement_recommendations", 0, 0, nil)
	}
	rows := make([]models.SupplementRecommendation, 0, len(supps))
	for _, s := range supps {
		rows = append(rows, models.SupplementRecommendation{
			DietPlanID:     planID,
			SupplementName: s.SupplementName,
			Dosage:         s.Dosage,
			Timing:         s.Timing,
			Benefit:        s.Benefit,
		})
	}
	return childResult("supplement_recommendations", 0, len(rows), config.DB.Create(&rows).Error)
}

func (g *PlanGenerator) saveTips(planID uint, tips []string) ChildWriteResult {
	if len(tips) == 0 {
		return childResult("nutrition_tips", 0, 0, nil)
	}
	rows := make([]models.NutritionTip, 0, len(tips))
	for _, t := range tips {
		rows = append(rows, models.NutritionTip{DietPlanID: planID, Tip: t})
	}
	return childResult("nutrition_tips", 0, len(rows), config.DB.Create(&rows).Error)
}

func (g *PlanGenerator) initHydration(userID uint, date time.Time, hg *HydrationGuidelines) ChildWriteResult {
	target := DefaultWaterTargetLiters
	schedule := ""
	if hg != nil {
		if hg.DailyWaterLiters > 0 {
			target = float64(hg.DailyWaterLiters)
		}
		if len(hg.WaterIntakeSchedule) > 0 {
			schedule = string(hg.WaterIntakeSchedule)
		}
	}
	err := EnsureHydrationRecord(userID, date, target, schedule)
	return childResult("hydration_tracking", 0, 1, err)
}
