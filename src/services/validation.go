package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imoti/imoti-backend/src/dtos"
)

// ErrValidation marks input rejections raised before any row is touched.
// Controllers match it with errors.Is to answer 400 instead of 500.
var ErrValidation = errors.New("validation failed")

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func validatePropertyRequest(req *dtos.PropertyRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return validationError("title is required")
	}
	if len(req.Title) > 200 {
		return validationError("title must be at most 200 characters")
	}
	if req.Price < 0 {
		return validationError("price must not be negative")
	}
	if req.Area < 1 || req.Area > 10000 {
		return validationError("area must be between 1 and 10000")
	}
	if req.Floor < 0 || req.Floor > 200 {
		return validationError("floor must be between 0 and 200")
	}
	if req.TotalFloors < 0 || req.TotalFloors > 200 {
		return validationError("totalFloors must be between 0 and 200")
	}
	quarterName := strings.TrimSpace(req.QuarterName)
	if len(quarterName) < 5 || len(quarterName) > 80 {
		return validationError("quarterName must be between 5 and 80 characters")
	}
	if len(strings.TrimSpace(req.BuildingTypeName)) > 50 {
		return validationError("buildingTypeName must be at most 50 characters")
	}
	if req.ImageUrl != nil && len(*req.ImageUrl) > 500 {
		return validationError("imageUrl must be at most 500 characters")
	}
	if req.Description != nil && len(*req.Description) > 1000 {
		return validationError("description must be at most 1000 characters")
	}
	return nil
}
