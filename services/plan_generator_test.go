package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
)

const plannerStubResponse = `{
  "diet_plan": {
    "daily_calorie_target": 1800,
    "bmr": "1450.5",
    "tdee": 2100,
    "calorie_adjustment": -300,
    "macronutrient_breakdown": {
      "protein_grams": 120,
      "protein_percentage": 27,
      "carbs_grams": "180",
      "carbs_percentage": 40,
      "fats_grams": 66,
      "fats_percentage": 33
    },
    "meal_plan": [
      {
        "day": 1,
        "day_name": "Monday",
        "daily_total_calories": 1800,
        "meals": [
          {
            "meal_type": "Breakfast",
            "time": "07:30",
            "meal_name": "Oats Bowl",
            "total_meal_calories": 400,
            "cooking_time": "10 min",
            "difficulty_level": "Easy",
            "notes": "Use rolled oats",
            "food_items": [
              {"item": "Oats", "quantity": "50g", "calories": 190, "protein": 7, "carbs": 33, "fats": 3},
              {"item": "Milk", "quantity": "200ml", "calories": 120, "protein": "8", "carbs": 12, "fats": 4}
            ],
            "ingredients": [
              {"ingredient": "Rolled oats", "quantity": "50", "unit": "g"}
            ],
            "recipe_steps": [
              {"step_number": 1, "instruction": "Boil oats"},
              {"step_number": "2", "instruction": "Add milk"}
            ]
          },
          {
            "meal_type": "Lunch",
            "time": "13:00",
            "meal_name": "Dal Rice",
            "total_meal_calories": 600,
            "food_items": [
              {"item": "Dal", "quantity": "1 cup", "calories": 230, "protein": 15, "carbs": 40, "fats": 6}
            ],
            "ingredients": [],
            "recipe_steps": []
          }
        ]
      },
      {
        "day": 2,
        "day_name": "Tuesday",
        "daily_total_calories": 1750,
        "meals": [
          {
            "meal_type": "Breakfast",
            "time": "07:30",
            "meal_name": "Poha",
            "total_meal_calories": 350,
            "food_items": [],
            "ingredients": [],
            "recipe_steps": []
          }
        ]
      }
    ],
    "snack_options": [
      {"snack_name": "Roasted Chana", "ingredients": "chana, salt", "calories": 120, "protein": 7}
    ],
    "supplement_recommendations": [
      {"supplement_name": "Vitamin D3", "dosage": "1000 IU", "timing": "Morning", "benefit": "Bone health"}
    ],
    "nutrition_tips": ["Drink water before meals", "Avoid late-night snacking"],
    "hydration_guidelines": {
      "daily_water_liters": 3.0,
      "water_intake_schedule": {"morning": "1L", "afternoon": "1L", "evening": "1L"}
    }
  }
}`

func startPlannerStub(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/diet-plan" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("PLANNER_API_URL", srv.URL)
}

func TestGenerateAndSavePersistsFullTree(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	startPlannerStub(t, http.StatusOK, plannerStubResponse)

	gen := NewPlanGenerator(NewPlannerClient())
	plan, results, err := gen.GenerateAndSave(user.ID)
	if err != nil {
		t.Fatalf("GenerateAndSave: %v", err)
	}

	if !plan.IsActive {
		t.Errorf("new plan should be active")
	}
	if plan.DailyCalorieTarget != 1800 {
		t.Errorf("calorie target = %d, want 1800", plan.DailyCalorieTarget)
	}
	if plan.BMR != 1450.5 {
		t.Errorf("bmr = %v, want 1450.5 coerced from string", plan.BMR)
	}
	if plan.CarbsGrams != 180 {
		t.Errorf("carbs grams = %v, want 180 coerced from string", plan.CarbsGrams)
	}
	if !plan.EndDate.Equal(plan.StartDate.AddDate(0, 0, 6)) {
		t.Errorf("plan should span 7 days: %v .. %v", plan.StartDate, plan.EndDate)
	}

	for _, r := range results {
		if !r.OK() {
			t.Errorf("child write %s failed: %s", r.Collection, r.Error)
		}
	}

	loaded, err := GetActivePlan(user.ID)
	if err != nil {
		t.Fatalf("GetActivePlan: %v", err)
	}
	if len(loaded.DailyPlans) != 2 {
		t.Fatalf("got %d days, want 2", len(loaded.DailyPlans))
	}
	day1 := loaded.DailyPlans[0]
	if day1.DayNumber != 1 || len(day1.Meals) != 2 {
		t.Fatalf("day 1 = number %d with %d meals, want 1 with 2", day1.DayNumber, len(day1.Meals))
	}
	var breakfast models.Meal
	for _, m := range day1.Meals {
		if m.MealType == "Breakfast" {
			breakfast = m
		}
	}
	if len(breakfast.FoodItems) != 2 {
		t.Errorf("breakfast food items = %d, want 2", len(breakfast.FoodItems))
	}
	if len(breakfast.RecipeSteps) != 2 {
		t.Errorf("breakfast recipe steps = %d, want 2", len(breakfast.RecipeSteps))
	}
	if len(loaded.SnackOptions) != 1 || len(loaded.Supplements) != 1 || len(loaded.NutritionTips) != 2 {
		t.Errorf("plan collections = %d snacks, %d supplements, %d tips",
			len(loaded.SnackOptions), len(loaded.Supplements), len(loaded.NutritionTips))
	}

	rec, err := GetTodayHydration(user.ID)
	if err != nil {
		t.Fatalf("GetTodayHydration: %v", err)
	}
	if rec.TargetLiters != 3.0 {
		t.Errorf("hydration target = %v, want 3.0 from guidelines", rec.TargetLiters)
	}
	if rec.WaterIntakeSchedule == "" {
		t.Errorf("hydration schedule not seeded")
	}
}

func TestGenerateAndSaveDeactivatesOldPlan(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	startPlannerStub(t, http.StatusOK, plannerStubResponse)

	old := &models.DietPlan{UserID: user.ID, PlanName: "old", IsActive: true}
	if err := config.DB.Create(old).Error; err != nil {
		t.Fatalf("seed old plan: %v", err)
	}

	gen := NewPlanGenerator(NewPlannerClient())
	if _, _, err := gen.GenerateAndSave(user.ID); err != nil {
		t.Fatalf("GenerateAndSave: %v", err)
	}

	var active []models.DietPlan
	if err := config.DB.Where("user_id = ? AND is_active = ?", user.ID, true).Find(&active).Error; err != nil {
		t.Fatalf("query active plans: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("got %d active plans, want exactly 1", len(active))
	}
	if active[0].ID == old.ID {
		t.Errorf("old plan is still the active one")
	}
}

func TestGenerateAndSavePlannerFailureKeepsOldPlan(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	startPlannerStub(t, http.StatusInternalServerError, `{"error":"model overloaded"}`)

	old := &models.DietPlan{UserID: user.ID, PlanName: "old", IsActive: true}
	if err := config.DB.Create(old).Error; err != nil {
		t.Fatalf("seed old plan: %v", err)
	}

	gen := NewPlanGenerator(NewPlannerClient())
	if _, _, err := gen.GenerateAndSave(user.ID); err == nil {
		t.Fatalf("expected error from planner failure")
	}

	var check models.DietPlan
	if err := config.DB.First(&check, old.ID).Error; err != nil {
		t.Fatalf("reload old plan: %v", err)
	}
	if !check.IsActive {
		t.Errorf("old plan deactivated despite planner failure")
	}
}

func TestGenerateAndSaveChildFailureIsReported(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	startPlannerStub(t, http.StatusOK, plannerStubResponse)

	// Break only the recipe_steps table; the rest of the tree must survive.
	if err := config.DB.Migrator().DropTable(&models.RecipeStep{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	gen := NewPlanGenerator(NewPlannerClient())
	plan, results, err := gen.GenerateAndSave(user.ID)
	if err != nil {
		t.Fatalf("GenerateAndSave should not fail on child write: %v", err)
	}
	if !plan.IsActive {
		t.Errorf("plan should still be saved and active")
	}

	var sawFailure bool
	for _, r := range results {
		if r.Collection == "recipe_steps" && !r.OK() && r.Count > 0 {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Errorf("recipe_steps failure not reported in %+v", results)
	}

	var meals int64
	if err := config.DB.Model(&models.Meal{}).Count(&meals).Error; err != nil {
		t.Fatalf("count meals: %v", err)
	}
	if meals != 3 {
		t.Errorf("got %d meals, want 3 persisted despite child failure", meals)
	}
}

func TestGenerateAndSaveRequiresCompleteProfile(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	if err := config.DB.Model(user).Update("weight", 0).Error; err != nil {
		t.Fatalf("clear weight: %v", err)
	}

	gen := NewPlanGenerator(NewPlannerClient())
	if _, _, err := gen.GenerateAndSave(user.ID); err != ErrProfileIncomplete {
		t.Errorf("err = %v, want ErrProfileIncomplete", err)
	}
}

func TestGenerateAndSaveSendsTranslatedEnums(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	var got PlanRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(plannerStubResponse))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("PLANNER_API_URL", srv.URL)

	if _, err := AddRestriction(user.ID, "Peanuts", "allergy"); err != nil {
		t.Fatalf("AddRestriction: %v", err)
	}

	gen := NewPlanGenerator(NewPlannerClient())
	if _, _, err := gen.GenerateAndSave(user.ID); err != nil {
		t.Fatalf("GenerateAndSave: %v", err)
	}

	if got.Goal != "Weight Loss" {
		t.Errorf("goal = %q, want Weight Loss", got.Goal)
	}
	if got.ActivityLevel != "Moderately Active" {
		t.Errorf("activity = %q, want Moderately Active", got.ActivityLevel)
	}
	if got.DietPreference != "Vegetarian" {
		t.Errorf("diet = %q, want Vegetarian", got.DietPreference)
	}
	if got.Allergies != "peanuts" {
		t.Errorf("allergies = %q, want peanuts", got.Allergies)
	}
	if got.Dislikes != "None" {
		t.Errorf("dislikes = %q, want None", got.Dislikes)
	}
	if got.MealsPerDay != 3 {
		t.Errorf("meals per day = %d, want 3", got.MealsPerDay)
	}
}
