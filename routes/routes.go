package routes

import (
	"github.com/naveen2624/personalized-diet-recommendation/controllers"
	"github.com/naveen2624/personalized-diet-recommendation/middlewares"
	"github.com/naveen2624/personalized-diet-recommendation/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Hub      *services.RealtimeHub
	Push     *services.PushService
	Reminder *services.HydrationReminder
	Planner  *services.PlannerClient
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	planCtl := controllers.NewPlanController(services.NewPlanGenerator(deps.Planner))
	hydrationCtl := controllers.NewHydrationController(deps.Reminder)
	realtimeCtl := controllers.NewRealtimeController(deps.Hub)
	deviceCtl := controllers.NewDeviceController(deps.Push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/restrictions", controllers.ListRestrictions)
		user.POST("/restrictions", controllers.AddRestriction)
		user.DELETE("/restrictions/:id", controllers.RemoveRestriction)

		user.POST("/diet-plan/generate", planCtl.GeneratePlan)
		user.GET("/diet-plan", planCtl.GetActivePlan)
		user.GET("/diet-plans/:id", planCtl.GetPlanByID)
		user.GET("/diet-plan/day/:day/totals", planCtl.GetDailyTotals)
		user.GET("/diet-plan/day/:day/export", planCtl.ExportDay)
		user.GET("/current-meal", planCtl.CurrentMeal)
		user.POST("/meals/:id/complete", planCtl.CompleteMeal)

		user.GET("/hydration", hydrationCtl.GetToday)
		user.POST("/hydration/intake", hydrationCtl.AddIntake)
		user.POST("/hydration/dismiss-reminder", hydrationCtl.DismissReminder)

		user.POST("/weight", controllers.AddWeightEntry)
		user.GET("/weight/history", controllers.GetWeightHistory)

		user.GET("/alerts", controllers.ListAlerts)
		user.GET("/ws/alerts", realtimeCtl.AlertsWS)

		user.POST("/devices/register", deviceCtl.Register)
		user.POST("/notifications/toggle", deviceCtl.ToggleNotifications)
	}

	return r
}
