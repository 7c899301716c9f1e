package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imoti/imoti-backend/src/dtos"
	"github.com/imoti/imoti-backend/src/services"
)

type PropertyController struct {
	service *services.PropertyService
}

func NewPropertyController(service *services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// GetPropertiesPaged handles GET requests for the paged property index
func (c *PropertyController) GetPropertiesPaged(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "12"))

	result, err := c.service.GetPropertiesPaged(page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAllProperties handles GET requests to retrieve every property record
func (c *PropertyController) GetAllProperties(ctx *gin.Context) {
	properties, err := c.service.GetAllProperties()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, properties)
}

// GetPropertyByID handles GET requests for a single property record
func (c *PropertyController) GetPropertyByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	property, err := c.service.GetPropertyByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if property == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	ctx.JSON(http.StatusOK, property)
}

// GetPropertiesByQuarter handles GET requests filtering by quarter name
func (c *PropertyController) GetPropertiesByQuarter(ctx *gin.Context) {
	properties, err := c.service.GetPropertiesByQuarter(ctx.Param("name"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, properties)
}

// GetTopPropertiesByQuarter handles GET requests for the most expensive
// properties of a quarter
func (c *PropertyController) GetTopPropertiesByQuarter(ctx *gin.Context) {
	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "10"))

	properties, err := c.service.GetTopPropertiesByQuarter(ctx.Param("name"), count)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, properties)
}

// GetPropertiesByBuildingType handles GET requests filtering by building type
func (c *PropertyController) GetPropertiesByBuildingType(ctx *gin.Context) {
	properties, err := c.service.GetPropertiesByBuildingType(ctx.Param("name"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, properties)
}

// SearchByPriceRange handles GET requests for the paged price range search
func (c *PropertyController) SearchByPriceRange(ctx *gin.Context) {
	var search dtos.PriceSearchRequest
	if err := ctx.ShouldBindQuery(&search); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.service.SearchByPriceRangePaged(search.MinPrice, search.MaxPrice, search.Page, search.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAveragePricesByQuarters handles GET requests for the per-quarter
// average price aggregation
func (c *PropertyController) GetAveragePricesByQuarters(ctx *gin.Context) {
	rows, err := c.service.GetAveragePricesByQuarters()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// CreateProperty handles POST requests to create a new property record
func (c *PropertyController) CreateProperty(ctx *gin.Context) {
	var req dtos.PropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := c.service.AddProperty(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, property)
}

// UpdateProperty handles PUT requests to update an existing property record
func (c *PropertyController) UpdateProperty(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var req dtos.PropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := c.service.UpdateProperty(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if property == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	ctx.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE requests to remove a property record
func (c *PropertyController) DeleteProperty(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	deleted, err := c.service.DeleteProperty(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
