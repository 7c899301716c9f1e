package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SortOrder defines the stable ascending display sequence of the gallery
// within a single property.
type PropertyImageModel struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ImageUrl   string    `json:"imageUrl" gorm:"column:image_url;type:varchar(500);not null"`
	SortOrder  int       `json:"order" gorm:"column:sort_order;not null;default:0"`
	PropertyID uuid.UUID `json:"propertyId" gorm:"column:property_id;type:uuid;not null"`
}

func (i *PropertyImageModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
