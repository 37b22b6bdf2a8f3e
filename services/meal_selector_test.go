package services

import (
	"testing"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/models"
)

func mealsAt(times ...string) []models.Meal {
	names := []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	meals := make([]models.Meal, 0, len(times))
	for i, tm := range times {
		meals = append(meals, models.Meal{MealType: names[i%len(names)], MealTime: tm})
	}
	return meals
}

func clock(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.Local)
}

func TestSelectMeals(t *testing.T) {
	tests := []struct {
		name        string
		times       []string
		now         time.Time
		wantCurrent string
		wantNext    string
	}{
		{
			name:        "midday picks lunch",
			times:       []string{"07:00", "12:30", "19:00"},
			now:         clock(13, 0),
			wantCurrent: "12:30",
			wantNext:    "19:00",
		},
		{
			name:        "before first meal picks first",
			times:       []string{"07:00", "12:30", "19:00"},
			now:         clock(6, 0),
			wantCurrent: "07:00",
			wantNext:    "12:30",
		},
		{
			name:        "after last meal wraps next to first",
			times:       []string{"07:00", "12:30", "19:00"},
			now:         clock(20, 0),
			wantCurrent: "19:00",
			wantNext:    "07:00",
		},
		{
			name:        "exact meal time counts as started",
			times:       []string{"07:00", "12:30", "19:00"},
			now:         clock(12, 30),
			wantCurrent: "12:30",
			wantNext:    "19:00",
		},
		{
			name:        "unparseable time sorts to midnight",
			times:       []string{"", "12:30"},
			now:         clock(9, 0),
			wantCurrent: "",
			wantNext:    "12:30",
		},
		{
			name:        "single meal is both current and next",
			times:       []string{"08:00"},
			now:         clock(15, 0),
			wantCurrent: "08:00",
			wantNext:    "08:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, next := SelectMeals(mealsAt(tt.times...), tt.now)
			if current == nil || next == nil {
				t.Fatalf("SelectMeals returned nil meal")
			}
			if current.MealTime != tt.wantCurrent {
				t.Errorf("current meal time = %q, want %q", current.MealTime, tt.wantCurrent)
			}
			if next.MealTime != tt.wantNext {
				t.Errorf("next meal time = %q, want %q", next.MealTime, tt.wantNext)
			}
		})
	}
}

func TestSelectMealsEmpty(t *testing.T) {
	current, next := SelectMeals(nil, clock(12, 0))
	if current != nil || next != nil {
		t.Errorf("expected nil meals for empty input, got %v, %v", current, next)
	}
}

func TestSelectMealsDoesNotMutateInput(t *testing.T) {
	meals := mealsAt("19:00", "07:00")
	SelectMeals(meals, clock(12, 0))
	if meals[0].MealTime != "19:00" {
		t.Errorf("input slice was reordered")
	}
}

func TestMinutesOf(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"07:00", 420},
		{"12:30", 750},
		{"19:00:00", 1140},
		{"", 0},
		{"noon", 0},
		{"8", 0},
	}
	for _, tt := range tests {
		if got := minutesOf(tt.in); got != tt.want {
			t.Errorf("minutesOf(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
