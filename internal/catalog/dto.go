package catalog

import (
	"github.com/amakha/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries the caller-supplied fields for a new product.
type CreateProductInput struct {
	Name        string
	Category    enums.ProductCategory
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
}

// ProductPatch is a partial update. Nil fields leave the stored value
// unchanged; set fields override it.
type ProductPatch struct {
	Name        *string
	Category    *enums.ProductCategory
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	ImageURL    *string
	ReviewCount *int
	Rating      *float64
}

func (p ProductPatch) apply(product Product) Product {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.ReviewCount != nil {
		product.ReviewCount = *p.ReviewCount
	}
	if p.Rating != nil {
		product.Rating = *p.Rating
	}
	return product
}
