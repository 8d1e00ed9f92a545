package main

import (
	"fmt"
	"log"

	"washwear-backend/config"
	"washwear-backend/routes"
	"washwear-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.Load()
	config.InitStore()
}

func main() {
	reminders := services.NewReminderService(config.Records)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + config.App.ServerPort)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
