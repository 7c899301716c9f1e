package services

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/imoti/imoti-backend/src/dtos"
	"github.com/imoti/imoti-backend/src/models"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	defaultTopCount = 10
)

type PropertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a new instance of PropertyService
func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

// withAssociations attaches Quarter, BuildingType and the ordered image
// gallery to every property a query materializes.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Quarter").
		Preload("BuildingType").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}

// GetAllProperties retrieves every property, most expensive first.
func (s *PropertyService) GetAllProperties() ([]models.PropertyModel, error) {
	var properties []models.PropertyModel
	result := withAssociations(s.db).
		Order("price DESC, id ASC").
		Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}
	return properties, nil
}

// GetPropertyByID retrieves a single property with its associations.
// Returns (nil, nil) when no row matches.
func (s *PropertyService) GetPropertyByID(id uuid.UUID) (*models.PropertyModel, error) {
	var property models.PropertyModel
	err := withAssociations(s.db).First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Property %s not found\n", id)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// GetPropertiesByQuarter retrieves the properties of one quarter by exact
// name match, most expensive first.
func (s *PropertyService) GetPropertiesByQuarter(quarterName string) ([]models.PropertyModel, error) {
	var properties []models.PropertyModel
	result := withAssociations(s.db).
		Select("property_models.*").
		Joins("JOIN quarter_models ON quarter_models.id = property_models.quarter_id").
		Where("quarter_models.name = ?", quarterName).
		Order("price DESC, property_models.id ASC").
		Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(properties) == 0 {
		log.Printf("No properties found in quarter: %s\n", quarterName)
	}
	return properties, nil
}

// GetTopPropertiesByQuarter retrieves the count most expensive properties of
// one quarter. A non-positive count falls back to the default of 10.
func (s *PropertyService) GetTopPropertiesByQuarter(quarterName string, count int) ([]models.PropertyModel, error) {
	if count <= 0 {
		count = defaultTopCount
	}
	var properties []models.PropertyModel
	result := withAssociations(s.db).
		Select("property_models.*").
		Joins("JOIN quarter_models ON quarter_models.id = property_models.quarter_id").
		Where("quarter_models.name = ?", quarterName).
		Order("price DESC, property_models.id ASC").
		Limit(count).
		Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}
	return properties, nil
}

// GetPropertiesByBuildingType retrieves the properties of one building type
// by exact name match, most expensive first. Properties without a building
// type never match the join.
func (s *PropertyService) GetPropertiesByBuildingType(buildingType string) ([]models.PropertyModel, error) {
	var properties []models.PropertyModel
	result := withAssociations(s.db).
		Select("property_models.*").
		Joins("JOIN building_type_models ON building_type_models.id = property_models.building_type_id").
		Where("building_type_models.name = ?", buildingType).
		Order("price DESC, property_models.id ASC").
		Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(properties) == 0 {
		log.Printf("No properties found in building type: %s\n", buildingType)
	}
	return properties, nil
}

// SearchByPriceRange retrieves properties priced inside [minPrice, maxPrice],
// cheapest first.
func (s *PropertyService) SearchByPriceRange(minPrice, maxPrice float64) ([]models.PropertyModel, error) {
	var properties []models.PropertyModel
	result := withAssociations(s.db).
		Where("price >= ? AND price <= ?", minPrice, maxPrice).
		Order("price ASC, id ASC").
		Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(properties) == 0 {
		log.Printf("No properties found in price range: %.2f-%.2f\n", minPrice, maxPrice)
	}
	return properties, nil
}

// coercePaging clamps the requested page to >= 1 and the page size into
// [1, 100], defaulting to 12 when not positive.
func coercePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// SearchByPriceRangePaged retrieves one page of the ascending-price range
// search. TotalCount always reflects the full count over the closed interval;
// the item slice is empty whenever maxPrice <= minPrice.
func (s *PropertyService) SearchByPriceRangePaged(minPrice, maxPrice float64, page, pageSize int) (*dtos.PagedResult[models.PropertyModel], error) {
	page, pageSize = coercePaging(page, pageSize)

	var totalCount int64
	err := s.db.Model(&models.PropertyModel{}).
		Where("price >= ? AND price <= ?", minPrice, maxPrice).
		Count(&totalCount).Error
	if err != nil {
		return nil, err
	}

	properties := []models.PropertyModel{}
	if maxPrice > minPrice {
		result := withAssociations(s.db).
			Where("price >= ? AND price <= ?", minPrice, maxPrice).
			Order("price ASC, id ASC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&properties)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return &dtos.PagedResult[models.PropertyModel]{
		Items:      properties,
		PageNumber: page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

// GetPropertiesPaged retrieves one page of all properties, cheapest first.
func (s *PropertyService) GetPropertiesPaged(page, pageSize int) (*dtos.PagedResult[models.PropertyModel], error) {
	page, pageSize = coercePaging(page, pageSize)

	var totalCount int64
	if err := s.db.Model(&models.PropertyModel{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}

	properties := []models.PropertyModel{}
	result := withAssociations(s.db).
		Order("price ASC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&properties)
	if result.Error != nil {
		return nil, result.Error
	}

	return &dtos.PagedResult[models.PropertyModel]{
		Items:      properties,
		PageNumber: page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}, nil
}

// GetAveragePricesByQuarters groups all properties by quarter name and
// computes the mean price and property count per group, highest average
// first. Quarters without properties never appear.
func (s *PropertyService) GetAveragePricesByQuarters() ([]dtos.QuarterAveragePrice, error) {
	var rows []dtos.QuarterAveragePrice
	err := s.db.Model(&models.PropertyModel{}).
		Select("quarter_models.name AS name, AVG(property_models.price) AS average_price, COUNT(property_models.id) AS properties_count").
		Joins("JOIN quarter_models ON quarter_models.id = property_models.quarter_id").
		Group("quarter_models.name").
		Order("average_price DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// getOrCreateQuarter looks a quarter up by exact name and inserts one when
// absent. There is no unique constraint on the name, so two concurrent
// callers racing on a new name can leave duplicate rows; later lookups
// resolve to whichever row the store returns first.
func getOrCreateQuarter(tx *gorm.DB, name string) (*models.QuarterModel, error) {
	var quarter models.QuarterModel
	err := tx.First(&quarter, "name = ?", name).Error
	if err == nil {
		return &quarter, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	quarter = models.QuarterModel{Name: name}
	if err := tx.Create(&quarter).Error; err != nil {
		return nil, err
	}
	log.Printf("Quarter %q not found, created new one\n", name)
	return &quarter, nil
}

// getOrCreateBuildingType mirrors getOrCreateQuarter, same duplicate hazard.
func getOrCreateBuildingType(tx *gorm.DB, name string) (*models.BuildingTypeModel, error) {
	var buildingType models.BuildingTypeModel
	err := tx.First(&buildingType, "name = ?", name).Error
	if err == nil {
		return &buildingType, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	buildingType = models.BuildingTypeModel{Name: name}
	if err := tx.Create(&buildingType).Error; err != nil {
		return nil, err
	}
	log.Printf("BuildingType %q not found, created new one\n", name)
	return &buildingType, nil
}

// AddProperty validates the request, resolves the quarter and the optional
// building type by name (creating either on demand) and inserts the property,
// all inside one transaction. Returns the hydrated row.
func (s *PropertyService) AddProperty(req *dtos.PropertyRequest) (*models.PropertyModel, error) {
	if err := validatePropertyRequest(req); err != nil {
		return nil, err
	}

	log.Printf("Adding new property: %s in %s\n", req.Title, req.QuarterName)

	var property models.PropertyModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		quarter, err := getOrCreateQuarter(tx, strings.TrimSpace(req.QuarterName))
		if err != nil {
			return err
		}

		var buildingTypeID *uuid.UUID
		if name := strings.TrimSpace(req.BuildingTypeName); name != "" {
			buildingType, err := getOrCreateBuildingType(tx, name)
			if err != nil {
				return err
			}
			buildingTypeID = &buildingType.ID
		}

		property = models.PropertyModel{
			Title:          req.Title,
			Price:          req.Price,
			Area:           req.Area,
			Floor:          req.Floor,
			TotalFloors:    req.TotalFloors,
			ImageUrl:       req.ImageUrl,
			Description:    req.Description,
			QuarterID:      quarter.ID,
			BuildingTypeID: buildingTypeID,
		}
		return tx.Create(&property).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Property %s created successfully\n", property.ID)
	return s.GetPropertyByID(property.ID)
}

// UpdateProperty overwrites the scalar fields of an existing property and
// re-links its quarter and building type by name. A quarter is only resolved
// again when the name actually changed; a blank building-type name clears the
// link. Returns (nil, nil) when no row matches.
func (s *PropertyService) UpdateProperty(id uuid.UUID, req *dtos.PropertyRequest) (*models.PropertyModel, error) {
	if err := validatePropertyRequest(req); err != nil {
		return nil, err
	}

	found := true
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var property models.PropertyModel
		err := tx.Preload("Quarter").First(&property, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}

		quarterName := strings.TrimSpace(req.QuarterName)
		if property.Quarter.Name != quarterName {
			quarter, err := getOrCreateQuarter(tx, quarterName)
			if err != nil {
				return err
			}
			property.QuarterID = quarter.ID
		}

		if name := strings.TrimSpace(req.BuildingTypeName); name != "" {
			buildingType, err := getOrCreateBuildingType(tx, name)
			if err != nil {
				return err
			}
			property.BuildingTypeID = &buildingType.ID
		} else {
			property.BuildingTypeID = nil
		}

		property.Title = req.Title
		property.Price = req.Price
		property.Area = req.Area
		property.Floor = req.Floor
		property.TotalFloors = req.TotalFloors
		property.ImageUrl = req.ImageUrl
		property.Description = req.Description

		// Select("*") so the cleared building type reaches the store as NULL.
		return tx.Model(&property).Select("*").Omit("Quarter", "BuildingType", "Images").Updates(&property).Error
	})
	if err != nil {
		return nil, err
	}
	if !found {
		log.Printf("Property %s not found\n", id)
		return nil, nil
	}

	log.Printf("Property %s updated successfully\n", id)
	return s.GetPropertyByID(id)
}

// DeleteProperty removes a property together with its image gallery.
// Reports whether a row existed to remove.
func (s *PropertyService) DeleteProperty(id uuid.UUID) (bool, error) {
	found := true
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var property models.PropertyModel
		err := tx.First(&property, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		// Select(clause.Associations) removes the owned image rows with the
		// property; the quarter and building type rows stay untouched.
		return tx.Select(clause.Associations).Delete(&property).Error
	})
	if err != nil {
		return false, err
	}
	if !found {
		log.Printf("Property %s not found\n", id)
		return false, nil
	}

	log.Printf("Property %s deleted successfully\n", id)
	return true, nil
}
