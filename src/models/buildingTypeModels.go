package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuildingTypeModel struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string          `json:"name" gorm:"type:varchar(50);not null"`
	Properties []PropertyModel `json:"properties,omitempty" gorm:"foreignKey:BuildingTypeID;references:ID"`
}

func (b *BuildingTypeModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
