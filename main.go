package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kamau-dev/shopApp/config"
	"github.com/kamau-dev/shopApp/database"
	"github.com/kamau-dev/shopApp/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.LoadConfig()

	// Connect to database
	database.ConnectDatabase()
	defer database.DB.Close()

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(router, cfg.ReportTimeout)

	// Start server
	router.Run(":" + cfg.ServerPort)
}
