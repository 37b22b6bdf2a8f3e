package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/naveen2624/personalized-diet-recommendation/models"
)

// DisplayMeal is the API-facing shape of a meal: macros are summed from the
// meal's food items, and recipe steps come out in step order.
type DisplayMeal struct {
	Name            string              `json:"name"`
	Calories        int                 `json:"calories"`
	Protein         float64             `json:"protein"`
	Carbs           float64             `json:"carbs"`
	Fat             float64             `json:"fat"`
	MealTime        string              `json:"meal_time"`
	FoodItems       []models.FoodItem   `json:"food_items"`
	Ingredients     []models.Ingredient `json:"ingredients"`
	RecipeSteps     []string            `json:"recipe_steps"`
	CookingTime     string              `json:"cooking_time"`
	DifficultyLevel string              `json:"difficulty_level"`
	Notes           string              `json:"notes"`
}

// DayView maps a meal slot label ("Breakfast") to its display meal.
type DayView map[string]DisplayMeal

func buildDisplayMeal(m models.Meal) DisplayMeal {
	var protein, carbs, fat float64
	for _, fi := range m.FoodItems {
		protein += fi.Protein
		carbs += fi.Carbs
		fat += fi.Fats
	}

	steps := make([]models.RecipeStep, len(m.RecipeSteps))
	copy(steps, m.RecipeSteps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].StepNumber < steps[j].StepNumber
	})
	instructions := make([]string, 0, len(steps))
	for _, st := range steps {
		instructions = append(instructions, st.Instruction)
	}

	return DisplayMeal{
		Name:            m.MealName,
		Calories:        m.TotalMealCalories,
		Protein:         protein,
		Carbs:           carbs,
		Fat:             fat,
		MealTime:        m.MealTime,
		FoodItems:       m.FoodItems,
		Ingredients:     m.Ingredients,
		RecipeSteps:     instructions,
		CookingTime:     m.CookingTime,
		DifficultyLevel: m.DifficultyLevel,
		Notes:           m.Notes,
	}
}

// FormatForDisplay flattens a plan's daily tree into a day-indexed map of
// slot-keyed meals, 1-based on DayNumber.
func FormatForDisplay(plan *models.DietPlan) map[int]DayView {
	days := make(map[int]DayView, len(plan.DailyPlans))
	for _, d := range plan.DailyPlans {
		view := make(DayView, len(d.Meals))
		for _, m := range d.Meals {
			view[m.MealType] = buildDisplayMeal(m)
		}
		days[d.DayNumber] = view
	}
	return days
}

// Totals aggregates one day's macros across all meal slots.
type Totals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ComputeDailyTotals sums the day's meals. A day the plan does not cover
// yields a zero record rather than an error.
func ComputeDailyTotals(days map[int]DayView, day int) Totals {
	var t Totals
	view, ok := days[day]
	if !ok {
		return t
	}
	for _, m := range view {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// FormatMealCard renders the ingredient summary line for a meal card:
// ingredient rows first, then food item names, or a fallback when both are
// empty. Meal time is trimmed to "HH:MM".
func FormatMealCard(m DisplayMeal) (ingredients []string, mealTime string) {
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, fmt.Sprintf("%s (%s%s)", ing.IngredientName, ing.Quantity, ing.Unit))
	}
	for _, fi := range m.FoodItems {
		ingredients = append(ingredients, fi.ItemName)
	}
	if len(ingredients) == 0 {
		ingredients = []string{"No ingredients listed"}
	}

	mealTime = strings.TrimSpace(m.MealTime)
	if len(mealTime) > 5 {
		mealTime = mealTime[:5]
	}
	if mealTime == "" {
		mealTime = "N/A"
	}
	return ingredients, mealTime
}
