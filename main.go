package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/imoti/imoti-backend/src/db"
	"github.com/imoti/imoti-backend/src/middleware"
	"github.com/imoti/imoti-backend/src/models"
	"github.com/imoti/imoti-backend/src/routes"
	"github.com/imoti/imoti-backend/src/seed"
	"github.com/imoti/imoti-backend/src/services"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.QuarterModel{},
		&models.BuildingTypeModel{},
		&models.PropertyModel{},
		&models.PropertyImageModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// One-time import of the listings fixture into an empty store
	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = "src/seed/data/imoti.json"
	}
	if err := seed.Seed(db, seedFile); err != nil {
		log.Printf("Seeding failed: %v\n", err)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	propertyService := services.NewPropertyService(db)
	quarterService := services.NewQuarterService(db)
	buildingTypeService := services.NewBuildingTypeService(db)

	// Routes setup
	routes.SetupPropertyRoutes(router, propertyService)
	routes.SetupQuarterRoutes(router, quarterService)
	routes.SetupBuildingTypeRoutes(router, buildingTypeService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Real estate listings API")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
