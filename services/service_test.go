package services

import (
	"testing"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB swaps config.DB for an in-memory SQLite database. A single
// connection keeps the memory database alive for the test's duration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.UserProfile{},
		&models.DietaryRestriction{},
		&models.DietPlan{},
		&models.DailyMealPlan{},
		&models.Meal{},
		&models.FoodItem{},
		&models.Ingredient{},
		&models.RecipeStep{},
		&models.SnackOption{},
		&models.SupplementRecommendation{},
		&models.NutritionTip{},
		&models.MealCompletionLog{},
		&models.HydrationRecord{},
		&models.WeightEntry{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	config.DB = db
	t.Cleanup(func() {
		config.DB = nil
		_ = sqlDB.Close()
	})
	return db
}

func createTestUser(t *testing.T) *models.UserProfile {
	t.Helper()
	user := &models.UserProfile{
		Email:          "test@example.com",
		Password:       "hashed",
		Name:           "Test User",
		Height:         170,
		Weight:         70,
		Age:            30,
		Gender:         "female",
		Goal:           models.GoalLoss,
		ActivityLevel:  models.ActivityModeratelyActive,
		DietPreference: models.DietVegetarian,
		MealsPerDay:    3,
	}
	if err := config.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
