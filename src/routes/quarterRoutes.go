package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imoti/imoti-backend/src/controllers"
	"github.com/imoti/imoti-backend/src/services"
)

func SetupQuarterRoutes(router *gin.Engine, service *services.QuarterService) {
	quarterController := controllers.NewQuarterController(service)

	quarter := router.Group("/quarters")
	{
		quarter.GET("/", quarterController.GetQuarters)
		quarter.GET("/:id", quarterController.GetQuarterByID)
		quarter.POST("/", quarterController.CreateQuarter)
		quarter.DELETE("/:id", quarterController.DeleteQuarter)
	}
}
