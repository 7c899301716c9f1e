package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imoti/imoti-backend/src/models"
	"github.com/imoti/imoti-backend/src/services"
)

type QuarterController struct {
	service *services.QuarterService
}

func NewQuarterController(service *services.QuarterService) *QuarterController {
	return &QuarterController{service: service}
}

// GetQuarters handles GET requests to retrieve all quarter records
func (c *QuarterController) GetQuarters(ctx *gin.Context) {
	quarters, err := c.service.GetAllQuarters()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quarters)
}

// GetQuarterByID handles GET requests for a single quarter record
func (c *QuarterController) GetQuarterByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	quarter, err := c.service.GetQuarterByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quarter == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Quarter not found"})
		return
	}
	ctx.JSON(http.StatusOK, quarter)
}

// CreateQuarter handles POST requests to create a new quarter record
func (c *QuarterController) CreateQuarter(ctx *gin.Context) {
	var quarter models.QuarterModel
	if err := ctx.ShouldBindJSON(&quarter); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := c.service.CreateQuarter(&quarter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// DeleteQuarter handles DELETE requests to remove a quarter record.
// Deletion is refused while properties still reference the quarter.
func (c *QuarterController) DeleteQuarter(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	deleted, err := c.service.DeleteQuarter(id)
	if err != nil {
		if errors.Is(err, services.ErrQuarterInUse) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Quarter not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
