package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Name carries no unique constraint; the lookup-then-insert path in the
// services layer matches on exact name and tolerates duplicates.
type QuarterModel struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string          `json:"name" gorm:"type:varchar(80);not null"`
	Properties []PropertyModel `json:"properties,omitempty" gorm:"foreignKey:QuarterID;references:ID"`
}

func (q *QuarterModel) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
