package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imoti/imoti-backend/src/models"
)

type BuildingTypeService struct {
	db *gorm.DB
}

// NewBuildingTypeService creates a new instance of BuildingTypeService
func NewBuildingTypeService(db *gorm.DB) *BuildingTypeService {
	return &BuildingTypeService{db: db}
}

// GetAllBuildingTypes retrieves all BuildingType records from the database
func (s *BuildingTypeService) GetAllBuildingTypes() ([]models.BuildingTypeModel, error) {
	var buildingTypes []models.BuildingTypeModel
	result := s.db.Order("name ASC").Find(&buildingTypes)
	if result.Error != nil {
		return nil, result.Error
	}
	return buildingTypes, nil
}

// GetBuildingTypeByID retrieves a single building type; (nil, nil) when absent.
func (s *BuildingTypeService) GetBuildingTypeByID(id uuid.UUID) (*models.BuildingTypeModel, error) {
	var buildingType models.BuildingTypeModel
	err := s.db.First(&buildingType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &buildingType, nil
}

// CreateBuildingType inserts a new building type row.
func (s *BuildingTypeService) CreateBuildingType(buildingType *models.BuildingTypeModel) (*models.BuildingTypeModel, error) {
	if err := s.db.Create(buildingType).Error; err != nil {
		return nil, err
	}
	return buildingType, nil
}

// DeleteBuildingType removes a building type and clears the reference on
// every property that carried it. Reports whether a row existed to remove.
func (s *BuildingTypeService) DeleteBuildingType(id uuid.UUID) (bool, error) {
	found := true
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var buildingType models.BuildingTypeModel
		err := tx.First(&buildingType, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&models.PropertyModel{}).
			Where("building_type_id = ?", id).
			Update("building_type_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&buildingType).Error
	})
	if err != nil {
		return false, err
	}
	if !found {
		log.Printf("BuildingType %s not found\n", id)
		return false, nil
	}
	return true, nil
}
