package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imoti/imoti-backend/src/controllers"
	"github.com/imoti/imoti-backend/src/services"
)

func SetupPropertyRoutes(router *gin.Engine, service *services.PropertyService) {
	propertyController := controllers.NewPropertyController(service)

	property := router.Group("/properties")
	{
		property.GET("/", propertyController.GetPropertiesPaged)
		property.GET("/all", propertyController.GetAllProperties)
		property.GET("/search", propertyController.SearchByPriceRange)
		property.GET("/stats/average-price-by-quarter", propertyController.GetAveragePricesByQuarters)
		property.GET("/quarter/:name", propertyController.GetPropertiesByQuarter)
		property.GET("/quarter/:name/top", propertyController.GetTopPropertiesByQuarter)
		property.GET("/building-type/:name", propertyController.GetPropertiesByBuildingType)
		property.GET("/:id", propertyController.GetPropertyByID)
		property.POST("/", propertyController.CreateProperty)
		property.PUT("/:id", propertyController.UpdateProperty)
		property.DELETE("/:id", propertyController.DeleteProperty)
	}
}
