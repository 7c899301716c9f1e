package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imoti/imoti-backend/src/models"
	"github.com/imoti/imoti-backend/src/services"
)

type BuildingTypeController struct {
	service *services.BuildingTypeService
}

func NewBuildingTypeController(service *services.BuildingTypeService) *BuildingTypeController {
	return &BuildingTypeController{service: service}
}

// GetBuildingTypes handles GET requests to retrieve all building type records
func (c *BuildingTypeController) GetBuildingTypes(ctx *gin.Context) {
	buildingTypes, err := c.service.GetAllBuildingTypes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, buildingTypes)
}

// GetBuildingTypeByID handles GET requests for a single building type record
func (c *BuildingTypeController) GetBuildingTypeByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	buildingType, err := c.service.GetBuildingTypeByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if buildingType == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "BuildingType not found"})
		return
	}
	ctx.JSON(http.StatusOK, buildingType)
}

// CreateBuildingType handles POST requests to create a new building type record
func (c *BuildingTypeController) CreateBuildingType(ctx *gin.Context) {
	var buildingType models.BuildingTypeModel
	if err := ctx.ShouldBindJSON(&buildingType); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateBuildingType(&buildingType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// DeleteBuildingType handles DELETE requests to remove a building type
// record; the reference is cleared on any property that carried it.
func (c *BuildingTypeController) DeleteBuildingType(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	deleted, err := c.service.DeleteBuildingType(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "BuildingType not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
