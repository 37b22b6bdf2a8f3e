package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
	"github.com/naveen2624/personalized-diet-recommendation/utils"

	"gorm.io/gorm"
)

// ProfileInput carries a partial profile update; zero values leave the stored
// field untouched.
type ProfileInput struct {
	Name           string  `json:"name"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	DietPreference string  `json:"diet_preference"`
	Goal           string  `json:"goal"`
	ActivityLevel  string  `json:"activity_level"`
	MealsPerDay    int     `json:"meals_per_day"`
	ProfilePic     string  `json:"profile_pic"`
}

// TargetWeight derives the goal weight shown on the dashboard: 5 kg below
// current for loss, 3 kg above for gain, unchanged for maintenance.
func TargetWeight(goal models.Goal, weight float64) float64 {
	switch goal {
	case models.GoalLoss:
		return weight - 5
	case models.GoalGain:
		return weight + 3
	default:
		return weight
	}
}

// GetUserProfile assembles the profile with its derived dashboard fields.
func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.UserProfile
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"height":          user.Height,
		"weight":          user.Weight,
		"age":             user.Age,
		"gender":          user.Gender,
		"diet_preference": user.DietPreference,
		"goal":            user.Goal,
		"activity_level":  user.ActivityLevel,
		"meals_per_day":   user.MealsPerDay,
		"profile_pic":     user.ProfilePic,
		"target_weight":   TargetWeight(user.Goal, user.Weight),
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		out["bmi"] = utils.FormatBMI(bmi)
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	return out, nil
}

// UpdateUserProfile merges the provided fields into the stored profile,
// creating the row when it does not exist yet. Enum fields must be one of the
// known values; anything else rejects the whole update.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.UserProfile, error) {
	var user models.UserProfile
	err := config.DB.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.UserProfile{Model: gorm.Model{ID: userID}}
	} else if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.MealsPerDay > 0 {
		user.MealsPerDay = input.MealsPerDay
	}

	if input.Goal != "" {
		g := models.Goal(strings.ToLower(input.Goal))
		if !g.Valid() {
			return nil, fmt.Errorf("invalid goal %q", input.Goal)
		}
		user.Goal = g
	}
	if input.ActivityLevel != "" {
		a := models.ActivityLevel(strings.ToLower(input.ActivityLevel))
		if !a.Valid() {
			return nil, fmt.Errorf("invalid activity level %q", input.ActivityLevel)
		}
		user.ActivityLevel = a
	}
	if input.DietPreference != "" {
		d := models.DietPreference(strings.ToLower(input.DietPreference))
		if !d.Valid() {
			return nil, fmt.Errorf("invalid diet preference %q", input.DietPreference)
		}
		user.DietPreference = d
	}

	if strings.HasPrefix(input.ProfilePic, "data:") {
		url, err := utils.UploadProfilePicture(input.ProfilePic, fmt.Sprintf("user-%d", userID))
		if err != nil {
			return nil, err
		}
		user.ProfilePic = url
	} else if input.ProfilePic != "" {
		user.ProfilePic = input.ProfilePic
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
