package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imoti/imoti-backend/src/controllers"
	"github.com/imoti/imoti-backend/src/services"
)

func SetupBuildingTypeRoutes(router *gin.Engine, service *services.BuildingTypeService) {
	buildingTypeController := controllers.NewBuildingTypeController(service)

	buildingType := router.Group("/building-types")
	{
		buildingType.GET("/", buildingTypeController.GetBuildingTypes)
		buildingType.GET("/:id", buildingTypeController.GetBuildingTypeByID)
		buildingType.POST("/", buildingTypeController.CreateBuildingType)
		buildingType.DELETE("/:id", buildingTypeController.DeleteBuildingType)
	}
}
