package catalog

import (
	"github.com/amakha/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog entry. Identity is assigned by the
// repository; review_count and rating start at zero for new products.
type Product struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Category    enums.ProductCategory `json:"category"`
	Description string                `json:"description"`
	Price       decimal.Decimal       `json:"price"`
	Stock       int                   `json:"stock"`
	ImageURL    string                `json:"image_url"`
	ReviewCount int                   `json:"review_count"`
	Rating      float64               `json:"rating"`
}
