// TalentSwipe backend API.
//
// @title TalentSwipe API
// @version 1.0
// @description AI-assisted recruiting backend: candidate swipe flow, interview pipeline, outreach and coaching.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"

	"talentswipe_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app.Run()
}
