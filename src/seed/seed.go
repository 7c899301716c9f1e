package seed

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imoti/imoti-backend/src/models"
)

// listingDto mirrors one entry of the JSON listings fixture.
type listingDto struct {
	Title        string   `json:"title"`
	Quarter      string   `json:"quarter"`
	Price        float64  `json:"price"`
	Area         int      `json:"area"`
	Floor        int      `json:"floor"`
	TotalFloors  int      `json:"totalFloors"`
	BuildingType string   `json:"buildingType"`
	ImageUrl     string   `json:"imageUrl"`
	Images       []string `json:"images"`
}

// Seed imports the listings fixture at path into an empty store. A store
// that already holds properties is left untouched. Listings with a blank or
// unknown quarter are skipped with a warning.
func Seed(db *gorm.DB, path string) error {
	var propertyCount int64
	if err := db.Model(&models.PropertyModel{}).Count(&propertyCount).Error; err != nil {
		return err
	}
	if propertyCount > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Seed file not found: %s\n", path)
		return err
	}

	var listings []listingDto
	if err := json.Unmarshal(data, &listings); err != nil {
		return err
	}
	if len(listings) == 0 {
		log.Println("No data found in seed file")
		return nil
	}

	log.Printf("Found %d properties in %s\n", len(listings), path)

	// Quarters insert
	quarterDic := map[string]uuid.UUID{}
	for _, listing := range listings {
		name := strings.TrimSpace(listing.Quarter)
		if name == "" {
			continue
		}
		if _, ok := quarterDic[name]; ok {
			continue
		}
		quarter := models.QuarterModel{Name: name}
		if err := db.Create(&quarter).Error; err != nil {
			return err
		}
		quarterDic[name] = quarter.ID
	}
	log.Printf("Added %d quarters\n", len(quarterDic))

	// Building types insert
	buildingTypeDic := map[string]uuid.UUID{}
	for _, listing := range listings {
		name := strings.TrimSpace(listing.BuildingType)
		if name == "" {
			continue
		}
		if _, ok := buildingTypeDic[name]; ok {
			continue
		}
		buildingType := models.BuildingTypeModel{Name: name}
		if err := db.Create(&buildingType).Error; err != nil {
			return err
		}
		buildingTypeDic[name] = buildingType.ID
	}
	log.Printf("Added %d building types\n", len(buildingTypeDic))

	// Properties insert
	properties := make([]models.PropertyModel, 0, len(listings))
	imageCount := 0

	for _, listing := range listings {
		quarterID, ok := quarterDic[strings.TrimSpace(listing.Quarter)]
		if !ok {
			log.Printf("Quarter not found, skipping listing: %q\n", listing.Quarter)
			continue
		}

		title := strings.TrimSpace(listing.Title)
		if title == "" {
			title = "Untitled listing"
		}
		totalFloors := listing.TotalFloors
		if totalFloors <= 0 {
			totalFloors = 1
		}

		var buildingTypeID *uuid.UUID
		if id, ok := buildingTypeDic[strings.TrimSpace(listing.BuildingType)]; ok {
			buildingTypeID = &id
		}

		var mainImage *string
		if listing.ImageUrl != "" {
			mainImage = &listing.ImageUrl
		} else if len(listing.Images) > 0 && listing.Images[0] != "" {
			mainImage = &listing.Images[0]
		}

		property := models.PropertyModel{
			Title:          title,
			Price:          listing.Price,
			Area:           listing.Area,
			Floor:          listing.Floor,
			TotalFloors:    totalFloors,
			ImageUrl:       mainImage,
			QuarterID:      quarterID,
			BuildingTypeID: buildingTypeID,
		}

		order := 0
		for _, imageUrl := range listing.Images {
			if strings.TrimSpace(imageUrl) == "" {
				continue
			}
			property.Images = append(property.Images, models.PropertyImageModel{
				ImageUrl:  imageUrl,
				SortOrder: order,
			})
			order++
			imageCount++
		}

		properties = append(properties, property)
	}

	if len(properties) > 0 {
		if err := db.Create(&properties).Error; err != nil {
			return err
		}
	}

	log.Printf("Added %d properties\n", len(properties))
	log.Printf("Added %d images\n", imageCount)
	log.Println("Seeding completed successfully!")
	return nil
}
