package models

import "time"

type Product struct {
	ID             int64     `json:"id"`
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Price          float64   `json:"price"`
	InventoryCount int       `json:"inventory_count"`
	Category       *string   `json:"category,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Weight         *int      `json:"weight,omitempty"`
	Dimensions     *string   `json:"dimensions,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductSummary is the list-endpoint shape: enough to render a listing
// without dragging the full metadata along.
type ProductSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

func (p *Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, Name: p.Name, SKU: p.SKU, Price: p.Price}
}

type CreateProductRequest struct {
	SKU            string  `json:"sku" validate:"required,min=1,max=50"`
	Name           string  `json:"name" validate:"required,max=255"`
	Description    *string `json:"description,omitempty"`
	Price          float64 `json:"price" validate:"gte=0"`
	InventoryCount int     `json:"inventory_count" validate:"gte=0"`
	Category       *string `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL       *string `json:"image_url,omitempty" validate:"omitempty,max=255"`
	Weight         *int    `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Dimensions     *string `json:"dimensions,omitempty" validate:"omitempty,max=50"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type UpdateProductRequest struct {
	SKU            *string  `json:"sku,omitempty" validate:"omitempty,min=1,max=50"`
	Name           *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Description    *string  `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	InventoryCount *int     `json:"inventory_count,omitempty" validate:"omitempty,gte=0"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL       *string  `json:"image_url,omitempty" validate:"omitempty,max=255"`
	Weight         *int     `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Dimensions     *string  `json:"dimensions,omitempty" validate:"omitempty,max=50"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

// ListProductsQuery carries the pagination/filter/sort parameters of the
// product listing endpoints. SortBy/SortDesc are accepted at the API surface
// and carried here, but the repository does not apply them yet.
type ListProductsQuery struct {
	Skip     int
	Limit    int
	Category *string
	IsActive *bool
	Search   string
	SortBy   string
	SortDesc bool
}
