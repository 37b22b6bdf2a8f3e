package main

import (
	"context"
	"log"
	"os"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/routes"
	"github.com/naveen2624/personalized-diet-recommendation/services"
	"github.com/naveen2624/personalized-diet-recommendation/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	reminder := services.NewHydrationReminder(hub)
	reminder.Start(context.Background())

	r := routes.SetupRouter(routes.Deps{
		Hub:      hub,
		Push:     push,
		Reminder: reminder,
		Planner:  services.NewPlannerClient(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
