package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// PlannerClient talks to the diet-generation API. A single POST produces the
// whole 7-day plan; any non-2xx status is a hard failure.
type PlannerClient struct {
	baseURL string
	client  *http.Client
}

func NewPlannerClient() *PlannerClient {
	base := os.Getenv("PLANNER_API_URL")
	if base == "" {
		base = "http://localhost:6060"
	}
	return &PlannerClient{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type PlanRequest struct {
	Goal           string  `json:"goal"`
	DietPreference string  `json:"diet_preference"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	ActivityLevel  string  `json:"activity_level"`
	Allergies      string  `json:"allergies"` // comma-joined labels or "None"
	Dislikes       string  `json:"dislikes"`  // always "None"; no UI input feeds this yet
	MealsPerDay    int     `json:"meals_per_day"`
}

// looseFloat tolerates numbers arriving as JSON strings or null and coerces
// anything non-numeric to 0, matching the persistence contract.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(v)
	return nil
}

type looseInt int

func (i *looseInt) UnmarshalJSON(b []byte) error {
	var f looseFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = looseInt(f)
	return nil
}

type MacroBreakdown struct {
	ProteinGrams      looseFloat `json:"protein_grams"`
	ProteinPercentage looseFloat `json:"protein_percentage"`
	CarbsGrams        looseFloat `json:"carbs_grams"`
	CarbsPercentage   looseFloat `json:"carbs_percentage"`
	FatsGrams         looseFloat `json:"fats_grams"`
	FatsPercentage    looseFloat `json:"fats_percentage"`
}

type PlanFoodItem struct {
	Item     string     `json:"item"`
	Quantity string     `json:"quantity"`
	Calories looseFloat `json:"calories"`
	Protein  looseFloat `json:"protein"`
	Carbs    looseFloat `json:"carbs"`
	Fats     looseFloat `json:"fats"`
}

type PlanIngredient struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
}

type PlanRecipeStep struct {
	StepNumber  looseInt `json:"step_number"`
	Instruction string   `json:"instruction"`
}

type PlanMeal struct {
	MealType          string           `json:"meal_type"`
	Time              string           `json:"time"`
	MealName          string           `json:"meal_name"`
	TotalMealCalories looseFloat       `json:"total_meal_calories"`
	CookingTime       string           `json:"cooking_time"`
	DifficultyLevel   string           `json:"difficulty_level"`
	Notes             string           `json:"notes"`
	FoodItems         []PlanFoodItem   `json:"food_items"`
	Ingredients       []PlanIngredient `json:"ingredients"`
	RecipeSteps       []PlanRecipeStep `json:"recipe_steps"`
}

type PlanDay struct {
	Day                looseInt   `json:"day"`
	DayName            string     `json:"day_name"`
	DailyTotalCalories looseFloat `json:"daily_total_calories"`
	Meals              []PlanMeal `json:"meals"`
}

type PlanSnack struct {
	SnackName   string     `json:"snack_name"`
	Ingredients string     `json:"ingredients"`
	Calories    looseFloat `json:"calories"`
	Protein     looseFloat `json:"protein"`
}

type PlanSupplement struct {
	SupplementName string `json:"supplement_name"`
	Dosage         string `json:"dosage"`
	Timing         string `json:"timing"`
	Benefit        string `json:"benefit"`
}

type HydrationGuidelines struct {
	DailyWaterLiters    looseFloat      `json:"daily_water_liters"`
	WaterIntakeSchedule json.RawMessage `json:"water_intake_schedule"`
}

type PlanResponse struct {
	DailyCalorieTarget        looseFloat           `json:"daily_calorie_target"`
	BMR                       looseFloat           `json:"bmr"`
	TDEE                      looseFloat           `json:"tdee"`
	CalorieAdjustment         looseFloat           `json:"calorie_adjustment"`
	MacronutrientBreakdown    MacroBreakdown       `json:"macronutrient_breakdown"`
	MealPlan                  []PlanDay            `json:"meal_plan"`
	SnackOptions              []PlanSnack          `json:"snack_options"`
	SupplementRecommendations []PlanSupplement     `json:"supplement_recommendations"`
	NutritionTips             []string             `json:"nutrition_tips"`
	HydrationGuidelines       *HydrationGuidelines `json:"hydration_guidelines"`
}

type plannerEnvelope struct {
	DietPlan PlanResponse `json:"diet_plan"`
}

func (p *PlannerClient) GeneratePlan(req PlanRequest) (*PlanResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan request: %w", err)
	}

	resp, err := p.client.Post(p.baseURL+"/api/diet-plan", "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to call diet planner: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read diet planner response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("diet planner API error %d: %s", resp.StatusCode, string(body))
	}

	var env plannerEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse diet planner JSON: %w", err)
	}
	return &env.DietPlan, nil
}
