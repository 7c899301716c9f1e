package dtos

// PagedResult is one slice of a larger ordered result set together with the
// paging metadata and the total row count before slicing.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
}

// QuarterAveragePrice is one row of the average-price-by-quarter aggregation.
type QuarterAveragePrice struct {
	Name            string  `json:"name"`
	AveragePrice    float64 `json:"averagePrice"`
	PropertiesCount int     `json:"propertiesCount"`
}

// PropertyRequest carries the create/update form fields for a property.
// BuildingTypeName left blank clears the building-type link on update.
type PropertyRequest struct {
	Title            string  `json:"title" form:"title" binding:"required,max=200"`
	Price            float64 `json:"price" form:"price" binding:"min=0"`
	Area             int     `json:"area" form:"area" binding:"required,min=1,max=10000"`
	Floor            int     `json:"floor" form:"floor" binding:"min=0,max=200"`
	TotalFloors      int     `json:"totalFloors" form:"totalFloors" binding:"min=0,max=200"`
	QuarterName      string  `json:"quarterName" form:"quarterName" binding:"required,min=5,max=80"`
	BuildingTypeName string  `json:"buildingTypeName" form:"buildingTypeName" binding:"omitempty,max=50"`
	ImageUrl         *string `json:"imageUrl" form:"imageUrl" binding:"omitempty,max=500"`
	Description      *string `json:"description" form:"description" binding:"omitempty,max=1000"`
}

// PriceSearchRequest carries the price range search query parameters.
type PriceSearchRequest struct {
	MinPrice float64 `json:"minPrice" form:"minPrice"`
	MaxPrice float64 `json:"maxPrice" form:"maxPrice"`
	Page     int     `json:"page" form:"page"`
	PageSize int     `json:"pageSize" form:"pageSize"`
}
