package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/imoti/imoti-backend/src/dtos"
	"github.com/imoti/imoti-backend/src/models"
	"github.com/imoti/imoti-backend/src/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.QuarterModel{},
		&models.BuildingTypeModel{},
		&models.PropertyModel{},
		&models.PropertyImageModel{},
	))
	return db
}

func newPropertyRequest(title string, price float64, area int, quarterName, buildingTypeName string) *dtos.PropertyRequest {
	return &dtos.PropertyRequest{
		Title:            title,
		Price:            price,
		Area:             area,
		Floor:            1,
		TotalFloors:      5,
		QuarterName:      quarterName,
		BuildingTypeName: buildingTypeName,
	}
}

func TestAddProperty_CreatesQuarterAndBuildingType(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	req := newPropertyRequest("Flat A", 100000, 50, "Center", "Brick")
	req.Floor = 3
	req.TotalFloors = 6

	property, err := service.AddProperty(req)
	require.NoError(t, err)
	require.NotNil(t, property)

	var quarters []models.QuarterModel
	require.NoError(t, db.Find(&quarters).Error)
	require.Len(t, quarters, 1)
	assert.Equal(t, "Center", quarters[0].Name)

	var buildingTypes []models.BuildingTypeModel
	require.NoError(t, db.Find(&buildingTypes).Error)
	require.Len(t, buildingTypes, 1)
	assert.Equal(t, "Brick", buildingTypes[0].Name)

	assert.Equal(t, quarters[0].ID, property.QuarterID)
	require.NotNil(t, property.BuildingTypeID)
	assert.Equal(t, buildingTypes[0].ID, *property.BuildingTypeID)

	assert.Equal(t, "Center", property.Quarter.Name)
	require.NotNil(t, property.BuildingType)
	assert.Equal(t, "Brick", property.BuildingType.Name)

	require.NotNil(t, property.PriceByArea)
	assert.Equal(t, 2000.0, *property.PriceByArea)
}

func TestAddProperty_ReusesExistingQuarterAndBuildingType(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("Flat A", 100000, 50, "Center", "Brick"))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("Flat B", 150000, 70, "Center", "Brick"))
	require.NoError(t, err)

	var quarterCount, buildingTypeCount int64
	require.NoError(t, db.Model(&models.QuarterModel{}).Count(&quarterCount).Error)
	require.NoError(t, db.Model(&models.BuildingTypeModel{}).Count(&buildingTypeCount).Error)
	assert.Equal(t, int64(1), quarterCount)
	assert.Equal(t, int64(1), buildingTypeCount)
}

func TestAddProperty_BlankBuildingTypeLeavesLinkEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	property, err := service.AddProperty(newPropertyRequest("Flat A", 100000, 50, "Center", ""))
	require.NoError(t, err)
	assert.Nil(t, property.BuildingTypeID)
	assert.Nil(t, property.BuildingType)

	var buildingTypeCount int64
	require.NoError(t, db.Model(&models.BuildingTypeModel{}).Count(&buildingTypeCount).Error)
	assert.Equal(t, int64(0), buildingTypeCount)
}

func TestAddProperty_Validation(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	cases := []struct {
		name string
		req  *dtos.PropertyRequest
	}{
		{"empty title", newPropertyRequest("  ", 100000, 50, "Center", "")},
		{"zero area", newPropertyRequest("Flat A", 100000, 0, "Center", "")},
		{"negative price", newPropertyRequest("Flat A", -1, 50, "Center", "")},
		{"short quarter name", newPropertyRequest("Flat A", 100000, 50, "Ctr", "")},
		{"floor above bound", func() *dtos.PropertyRequest {
			r := newPropertyRequest("Flat A", 100000, 50, "Center", "")
			r.Floor = 201
			return r
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			property, err := service.AddProperty(tc.req)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, property)
		})
	}

	// nothing persisted by any of the rejected requests
	var propertyCount int64
	require.NoError(t, db.Model(&models.PropertyModel{}).Count(&propertyCount).Error)
	assert.Equal(t, int64(0), propertyCount)
}

func TestGetPropertyByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	property, err := service.GetPropertyByID(uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, property)
}

func TestGetAllProperties_OrderedByPriceDescending(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("Cheap", 80000, 40, "Mladost 1", "Panel"))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("Expensive", 300000, 120, "Lozenets", "Brick"))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("Middle", 150000, 75, "Center", ""))
	require.NoError(t, err)

	properties, err := service.GetAllProperties()
	require.NoError(t, err)
	require.Len(t, properties, 3)

	assert.Equal(t, "Expensive", properties[0].Title)
	assert.Equal(t, "Middle", properties[1].Title)
	assert.Equal(t, "Cheap", properties[2].Title)

	// associations hydrated
	assert.Equal(t, "Lozenets", properties[0].Quarter.Name)
	require.NotNil(t, properties[0].BuildingType)
	assert.Equal(t, "Brick", properties[0].BuildingType.Name)
	assert.Nil(t, properties[1].BuildingType)
}

func TestGetPropertiesByQuarter_ExactMatch(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("In quarter", 100000, 50, "Lozenets", ""))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("Other quarter", 120000, 60, "Mladost 1", ""))
	require.NoError(t, err)

	properties, err := service.GetPropertiesByQuarter("Lozenets")
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "In quarter", properties[0].Title)

	properties, err = service.GetPropertiesByQuarter("lozenets")
	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestGetTopPropertiesByQuarter(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	prices := []float64{100000, 250000, 175000, 300000}
	for i, price := range prices {
		_, err := service.AddProperty(newPropertyRequest("Flat", price, 50+i, "Lozenets", ""))
		require.NoError(t, err)
	}

	properties, err := service.GetTopPropertiesByQuarter("Lozenets", 2)
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, 300000.0, properties[0].Price)
	assert.Equal(t, 250000.0, properties[1].Price)

	// non-positive count falls back to the default of 10
	properties, err = service.GetTopPropertiesByQuarter("Lozenets", 0)
	require.NoError(t, err)
	assert.Len(t, properties, 4)
}

func TestGetPropertiesByBuildingType_ExcludesUntyped(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("Brick flat", 100000, 50, "Center", "Brick"))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("Untyped flat", 120000, 60, "Center", ""))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("Panel flat", 90000, 45, "Center", "Panel"))
	require.NoError(t, err)

	properties, err := service.GetPropertiesByBuildingType("Brick")
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Brick flat", properties[0].Title)
}

func TestSearchByPriceRange_AscendingInclusive(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	for _, price := range []float64{50000, 100000, 150000, 200000} {
		_, err := service.AddProperty(newPropertyRequest("Flat", price, 50, "Center", ""))
		require.NoError(t, err)
	}

	properties, err := service.SearchByPriceRange(100000, 200000)
	require.NoError(t, err)
	require.Len(t, properties, 3)
	assert.Equal(t, 100000.0, properties[0].Price)
	assert.Equal(t, 150000.0, properties[1].Price)
	assert.Equal(t, 200000.0, properties[2].Price)
}

func TestSearchByPriceRangePaged_Coercion(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("Flat", 100000, 50, "Center", ""))
	require.NoError(t, err)

	// page < 1 clamps to 1, pageSize <= 0 defaults to 12
	result, err := service.SearchByPriceRangePaged(0, 500000, -3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PageNumber)
	assert.Equal(t, 12, result.PageSize)

	// pageSize > 100 caps at 100
	result, err = service.SearchByPriceRangePaged(0, 500000, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, result.PageSize)
}

func TestSearchByPriceRangePaged_SlicesAndCounts(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	for _, price := range []float64{50000, 100000, 150000, 200000, 250000} {
		_, err := service.AddProperty(newPropertyRequest("Flat", price, 50, "Center", ""))
		require.NoError(t, err)
	}

	result, err := service.SearchByPriceRangePaged(100000, 250000, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.TotalCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 100000.0, result.Items[0].Price)
	assert.Equal(t, 150000.0, result.Items[1].Price)

	result, err = service.SearchByPriceRangePaged(100000, 250000, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.TotalCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 200000.0, result.Items[0].Price)
	assert.Equal(t, 250000.0, result.Items[1].Price)

	// page past the end is empty but keeps the full count
	result, err = service.SearchByPriceRangePaged(100000, 250000, 9, 2)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(4), result.TotalCount)
}

func TestSearchByPriceRangePaged_EmptyRange(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("Flat", 100000, 50, "Center", ""))
	require.NoError(t, err)

	// max < min yields no rows and no error
	result, err := service.SearchByPriceRangePaged(200000, 100000, 1, 12)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(0), result.TotalCount)

	// max == min: the item slice stays empty while the count still covers
	// the closed interval
	result, err = service.SearchByPriceRangePaged(100000, 100000, 1, 12)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(1), result.TotalCount)
}

func TestGetPropertiesPaged(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	for _, price := range []float64{50000, 100000, 150000} {
		_, err := service.AddProperty(newPropertyRequest("Flat", price, 50, "Center", ""))
		require.NoError(t, err)
	}

	result, err := service.GetPropertiesPaged(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.TotalCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 50000.0, result.Items[0].Price)

	result, err = service.GetPropertiesPaged(2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.TotalCount)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 150000.0, result.Items[0].Price)
}

func TestGetAveragePricesByQuarters(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	_, err := service.AddProperty(newPropertyRequest("L1", 200000, 80, "Lozenets", ""))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("L2", 400000, 130, "Lozenets", ""))
	require.NoError(t, err)
	_, err = service.AddProperty(newPropertyRequest("M1", 90000, 45, "Mladost 1", ""))
	require.NoError(t, err)

	// a quarter without properties never shows up
	require.NoError(t, db.Create(&models.QuarterModel{Name: "Empty quarter"}).Error)

	rows, err := service.GetAveragePricesByQuarters()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Lozenets", rows[0].Name)
	assert.InDelta(t, 300000, rows[0].AveragePrice, 0.001)
	assert.Equal(t, 2, rows[0].PropertiesCount)

	assert.Equal(t, "Mladost 1", rows[1].Name)
	assert.InDelta(t, 90000, rows[1].AveragePrice, 0.001)
	assert.Equal(t, 1, rows[1].PropertiesCount)

	total := 0
	for _, row := range rows {
		total += row.PropertiesCount
	}
	assert.Equal(t, 3, total)
}

func TestUpdateProperty_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	property, err := service.UpdateProperty(uuid.New(), newPropertyRequest("Flat", 100000, 50, "Center", ""))
	assert.NoError(t, err)
	assert.Nil(t, property)
}

func TestUpdateProperty_RelinksQuarterAndKeepsOldRow(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	created, err := service.AddProperty(newPropertyRequest("Flat", 100000, 50, "Center", ""))
	require.NoError(t, err)
	oldQuarterID := created.QuarterID

	updated, err := service.UpdateProperty(created.ID, newPropertyRequest("Flat", 100000, 50, "Lozenets", ""))
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.NotEqual(t, oldQuarterID, updated.QuarterID)
	assert.Equal(t, "Lozenets", updated.Quarter.Name)

	// the now-unreferenced quarter row stays, no auto-cleanup
	var quarterCount int64
	require.NoError(t, db.Model(&models.QuarterModel{}).Count(&quarterCount).Error)
	assert.Equal(t, int64(2), quarterCount)
}

func TestUpdateProperty_BlankBuildingTypeClearsLink(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	created, err := service.AddProperty(newPropertyRequest("Flat", 100000, 50, "Center", "Brick"))
	require.NoError(t, err)
	require.NotNil(t, created.BuildingTypeID)

	updated, err := service.UpdateProperty(created.ID, newPropertyRequest("Flat", 100000, 50, "Center", ""))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.BuildingTypeID)
	assert.Nil(t, updated.BuildingType)

	// the building type row itself is never auto-deleted
	var buildingTypeCount int64
	require.NoError(t, db.Model(&models.BuildingTypeModel{}).Count(&buildingTypeCount).Error)
	assert.Equal(t, int64(1), buildingTypeCount)
}

func TestUpdateProperty_OverwritesScalars(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	created, err := service.AddProperty(newPropertyRequest("Old title", 100000, 50, "Center", ""))
	require.NoError(t, err)

	req := newPropertyRequest("New title", 240000, 80, "Center", "")
	req.Floor = 4
	req.TotalFloors = 9

	updated, err := service.UpdateProperty(created.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, 240000.0, updated.Price)
	assert.Equal(t, 80, updated.Area)
	assert.Equal(t, 4, updated.Floor)
	assert.Equal(t, 9, updated.TotalFloors)
	require.NotNil(t, updated.PriceByArea)
	assert.Equal(t, 3000.0, *updated.PriceByArea)
}

func TestDeleteProperty_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	deleted, err := service.DeleteProperty(uuid.New())
	assert.NoError(t, err)
	assert.False(t, deleted)

	var propertyCount int64
	require.NoError(t, db.Model(&models.PropertyModel{}).Count(&propertyCount).Error)
	assert.Equal(t, int64(0), propertyCount)
}

func TestDeleteProperty_RemovesImages(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	created, err := service.AddProperty(newPropertyRequest("Flat", 100000, 50, "Center", "Brick"))
	require.NoError(t, err)

	images := []models.PropertyImageModel{
		{ImageUrl: "https://img.example/1.jpg", SortOrder: 0, PropertyID: created.ID},
		{ImageUrl: "https://img.example/2.jpg", SortOrder: 1, PropertyID: created.ID},
	}
	require.NoError(t, db.Create(&images).Error)

	deleted, err := service.DeleteProperty(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var propertyCount, imageCount int64
	require.NoError(t, db.Model(&models.PropertyModel{}).Count(&propertyCount).Error)
	require.NoError(t, db.Model(&models.PropertyImageModel{}).Count(&imageCount).Error)
	assert.Equal(t, int64(0), propertyCount)
	assert.Equal(t, int64(0), imageCount)

	// the quarter and building type rows survive
	var quarterCount, buildingTypeCount int64
	require.NoError(t, db.Model(&models.QuarterModel{}).Count(&quarterCount).Error)
	require.NoError(t, db.Model(&models.BuildingTypeModel{}).Count(&buildingTypeCount).Error)
	assert.Equal(t, int64(1), quarterCount)
	assert.Equal(t, int64(1), buildingTypeCount)
}

func TestImagesPreloadedInStoredOrder(t *testing.T) {
	db := setupTestDB(t)
	service := services.NewPropertyService(db)

	created, err := service.AddProperty(newPropertyRequest("Flat", 100000, 50, "Center", ""))
	require.NoError(t, err)

	images := []models.PropertyImageModel{
		{ImageUrl: "https://img.example/second.jpg", SortOrder: 1, PropertyID: created.ID},
		{ImageUrl: "https://img.example/first.jpg", SortOrder: 0, PropertyID: created.ID},
	}
	require.NoError(t, db.Create(&images).Error)

	property, err := service.GetPropertyByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, property)
	require.Len(t, property.Images, 2)
	assert.Equal(t, "https://img.example/first.jpg", property.Images[0].ImageUrl)
	assert.Equal(t, "https://img.example/second.jpg", property.Images[1].ImageUrl)
}
