package models

// The planner API speaks its own vocabulary ("Weight Loss", "Moderately
// Active", ...). Internally everything is one of the closed values below;
// the APIValue methods are the only place the external strings appear.

type Goal string

const (
	GoalLoss     Goal = "loss"
	GoalGain     Goal = "gain"
	GoalMaintain Goal = "maintain"
)

var goalAPIValues = map[Goal]string{
	GoalLoss:     "Weight Loss",
	GoalGain:     "Muscle Gain",
	GoalMaintain: "Weight Maintenance",
}

func (g Goal) Valid() bool {
	_, ok := goalAPIValues[g]
	return ok
}

func (g Goal) APIValue() string {
	if v, ok := goalAPIValues[g]; ok {
		return v
	}
	return "Weight Maintenance"
}

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

var activityAPIValues = map[ActivityLevel]string{
	ActivitySedentary:        "Sedentary",
	ActivityLightlyActive:    "Lightly Active",
	ActivityModeratelyActive: "Moderately Active",
	ActivityVeryActive:       "Very Active",
	ActivityExtremelyActive:  "Extremely Active",
}

func (a ActivityLevel) Valid() bool {
	_, ok := activityAPIValues[a]
	return ok
}

func (a ActivityLevel) APIValue() string {
	if v, ok := activityAPIValues[a]; ok {
		return v
	}
	return "Moderately Active"
}

type DietPreference string

const (
	DietVegetarian    DietPreference = "vegetarian"
	DietVegan         DietPreference = "vegan"
	DietNonVegetarian DietPreference = "non-vegetarian"
	DietEggetarian    DietPreference = "eggetarian"
)

// Eggetarian deliberately collapses into the planner's Vegetarian category.
var dietAPIValues = map[DietPreference]string{
	DietVegetarian:    "Vegetarian",
	DietVegan:         "Vegan",
	DietNonVegetarian: "Non-Vegetarian",
	DietEggetarian:    "Vegetarian",
}

func (d DietPreference) Valid() bool {
	_, ok := dietAPIValues[d]
	return ok
}

func (d DietPreference) APIValue() string {
	if v, ok := dietAPIValues[d]; ok {
		return v
	}
	return "Vegetarian"
}

// Goals returns every valid goal value. The Valid/APIValue pair plus these
// listings keep the translation tables total and testable.
func Goals() []Goal {
	return []Goal{GoalLoss, GoalGain, GoalMaintain}
}

func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLightlyActive,
		ActivityModeratelyActive,
		ActivityVeryActive,
		ActivityExtremelyActive,
	}
}

func DietPreferences() []DietPreference {
	return []DietPreference{DietVegetarian, DietVegan, DietNonVegetarian, DietEggetarian}
}
