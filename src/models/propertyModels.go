package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyModel struct {
	ID             uuid.UUID            `json:"id" gorm:"type:uuid;primaryKey"`
	Title          string               `json:"title" gorm:"type:varchar(200);not null"`
	Price          float64              `json:"price" gorm:"type:numeric(12,2);not null"`
	Area           int                  `json:"area" gorm:"not null"`
	Floor          int                  `json:"floor"`
	TotalFloors    int                  `json:"totalFloors" gorm:"column:total_floors"`
	ImageUrl       *string              `json:"imageUrl" gorm:"column:image_url;type:varchar(500)"`
	Description    *string              `json:"description" gorm:"type:varchar(1000)"`
	QuarterID      uuid.UUID            `json:"quarterId" gorm:"column:quarter_id;type:uuid;not null"`
	Quarter        QuarterModel         `json:"quarter" gorm:"foreignKey:QuarterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	BuildingTypeID *uuid.UUID           `json:"buildingTypeId" gorm:"column:building_type_id;type:uuid"`
	BuildingType   *BuildingTypeModel   `json:"buildingType,omitempty" gorm:"foreignKey:BuildingTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Images         []PropertyImageModel `json:"images" gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PriceByArea    *float64             `json:"priceByArea,omitempty" gorm:"-"`
}

func (p *PropertyModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *PropertyModel) AfterFind(tx *gorm.DB) error {
	p.RefreshPriceByArea()
	return nil
}

// RefreshPriceByArea recomputes the derived price-per-square-metre value.
// Stays nil when area is not positive so callers never see Inf or NaN.
func (p *PropertyModel) RefreshPriceByArea() {
	if p.Area <= 0 {
		p.PriceByArea = nil
		return
	}
	v := p.Price / float64(p.Area)
	p.PriceByArea = &v
}
