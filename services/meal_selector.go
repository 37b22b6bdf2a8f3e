package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/models"
)

// minutesOf converts an "HH:MM" (or "HH:MM:SS") string to minutes past
// midnight. Anything unparseable sorts to midnight.
func minutesOf(mealTime string) int {
	parts := strings.Split(mealTime, ":")
	if len(parts) < 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return h*60 + m
}

// SelectMeals picks the current and next meal for a clock time. The current
// meal is the latest one whose time has passed; before the first meal of the
// day it is the first meal. The next meal wraps to the first meal after the
// day's last one.
func SelectMeals(meals []models.Meal, now time.Time) (current, next *models.Meal) {
	if len(meals) == 0 {
		return nil, nil
	}

	sorted := make([]models.Meal, len(meals))
	copy(sorted, meals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return minutesOf(sorted[i].MealTime) < minutesOf(sorted[j].MealTime)
	})

	nowMin := now.Hour()*60 + now.Minute()
	idx := 0
	for i, m := range sorted {
		if minutesOf(m.MealTime) <= nowMin {
			idx = i
		}
	}

	current = &sorted[idx]
	next = &sorted[(idx+1)%len(sorted)]
	return current, next
}
