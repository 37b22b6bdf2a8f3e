package services

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

var dayLabels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayLabel maps a 1-based plan day number to its weekday-style label.
func DayLabel(day int) string {
	if day < 1 || day > len(dayLabels) {
		return fmt.Sprintf("Day %d", day)
	}
	return dayLabels[day-1]
}

// ExportDay renders one plan day as a plain-text report and returns the
// suggested download filename alongside the content.
func ExportDay(days map[int]DayView, day int, now time.Time) (filename, content string) {
	label := DayLabel(day)
	totals := ComputeDailyTotals(days, day)

	var b strings.Builder
	rule := strings.Repeat("=", 50)
	thinRule := strings.Repeat("-", 50)

	b.WriteString("NUTRI.AI - PERSONALIZED MEAL PLAN\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(fmt.Sprintf("Date: %s\n", now.Format("January 2, 2006")))
	b.WriteString(fmt.Sprintf("Day: %s\n\n", label))

	b.WriteString("DAILY SUMMARY\n")
	b.WriteString(thinRule + "\n")
	b.WriteString(fmt.Sprintf("Total Calories: %d kcal\n", totals.Calories))
	b.WriteString(fmt.Sprintf("Protein: %.0fg | Carbs: %.0fg | Fat: %.0fg\n\n", totals.Protein, totals.Carbs, totals.Fat))

	b.WriteString("MEAL PLAN\n")
	b.WriteString(thinRule + "\n\n")

	view := days[day]
	slots := make([]string, 0, len(view))
	for slot := range view {
		slots = append(slots, slot)
	}
	// Order by clock time, slot label as tiebreaker, for a stable document.
	sort.SliceStable(slots, func(i, j int) bool {
		ti, tj := minutesOf(view[slots[i]].MealTime), minutesOf(view[slots[j]].MealTime)
		if ti != tj {
			return ti < tj
		}
		return slots[i] < slots[j]
	})

	for _, slot := range slots {
		m := view[slot]
		name := m.Name
		if name == "" {
			name = "Not set"
		}
		b.WriteString(fmt.Sprintf("%s (%s)\n", strings.ToUpper(slot), formatExportTime(m.MealTime)))
		b.WriteString(fmt.Sprintf("  %s\n", name))
		b.WriteString(fmt.Sprintf("  Calories: %d kcal\n", m.Calories))
		b.WriteString(fmt.Sprintf("  Protein: %.0fg | Carbs: %.0fg | Fat: %.0fg\n", m.Protein, m.Carbs, m.Fat))
		if m.CookingTime != "" {
			b.WriteString(fmt.Sprintf("  Cooking Time: %s\n", m.CookingTime))
		}
		if m.DifficultyLevel != "" {
			b.WriteString(fmt.Sprintf("  Difficulty: %s\n", m.DifficultyLevel))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString("Generated by Nutri.ai - Your AI-Powered Nutrition Assistant\n")

	filename = fmt.Sprintf("nutri-ai-%s.txt", strings.ReplaceAll(strings.ToLower(label), " ", "-"))
	return filename, b.String()
}

func formatExportTime(mealTime string) string {
	mealTime = strings.TrimSpace(mealTime)
	if len(mealTime) > 5 {
		mealTime = mealTime[:5]
	}
	if mealTime == "" {
		return "Not set"
	}
	return mealTime
}
