// Package seed holds the bootstrap dataset the storefront starts from. All
// state is volatile, so every restart begins from exactly these fixtures.
package seed

import (
	"fmt"
	"time"

	"github.com/amakha/storefront-backend/internal/catalog"
	"github.com/amakha/storefront-backend/internal/orders"
	"github.com/amakha/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Fixture bundles the initial catalog and order list.
type Fixture struct {
	Products []catalog.Product
	Orders   []orders.Order
}

// Load returns the bootstrap dataset, validated.
func Load() (Fixture, error) {
	f := Fixture{
		Products: products(),
		Orders:   mockOrders(),
	}
	if err := validate(f); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

func validate(f Fixture) error {
	var err error

	seenProducts := map[int64]bool{}
	for _, p := range f.Products {
		if seenProducts[p.ID] {
			err = multierr.Append(err, fmt.Errorf("product %d: duplicate id", p.ID))
		}
		seenProducts[p.ID] = true
		if !p.Category.IsValid() {
			err = multierr.Append(err, fmt.Errorf("product %d: invalid category %q", p.ID, p.Category))
		}
		if p.Price.IsNegative() {
			err = multierr.Append(err, fmt.Errorf("product %d: negative price", p.ID))
		}
		if p.Stock < 0 {
			err = multierr.Append(err, fmt.Errorf("product %d: negative stock", p.ID))
		}
		if p.Rating < 0 || p.Rating > 5 {
			err = multierr.Append(err, fmt.Errorf("product %d: rating out of range", p.ID))
		}
	}

	seenOrders := map[string]bool{}
	for _, o := range f.Orders {
		if seenOrders[o.ID] {
			err = multierr.Append(err, fmt.Errorf("order %s: duplicate id", o.ID))
		}
		seenOrders[o.ID] = true
		if !o.Status.IsValid() {
			err = multierr.Append(err, fmt.Errorf("order %s: invalid status %q", o.ID, o.Status))
		}
		if len(o.Items) == 0 {
			err = multierr.Append(err, fmt.Errorf("order %s: no items", o.ID))
		}
	}

	return err
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func products() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Amakha Black Oud Car Perfume", Category: enums.ProductCategoryPerfume, Description: "Luxurious oriental fragrance with notes of oud, amber and sandalwood. Long-lasting premium car air freshener.", Price: price("1299.00"), Stock: 50, ImageURL: "/products/cologn.jpg", ReviewCount: 12, Rating: 5},
		{ID: 2, Name: "Amakha Ocean Breeze Car Perfume", Category: enums.ProductCategoryPerfume, Description: "Fresh aquatic scent with hints of sea salt and citrus. Perfect for a clean, refreshing atmosphere.", Price: price("999.00"), Stock: 75, ImageURL: "/products/download.jpg", ReviewCount: 8, Rating: 4},
		{ID: 3, Name: "Amakha Leather & Wood Car Perfume", Category: enums.ProductCategoryPerfume, Description: "Sophisticated blend of rich leather and cedarwood. Masculine and elegant fragrance.", Price: price("1399.00"), Stock: 40, ImageURL: "/products/download (1).jpg", ReviewCount: 15, Rating: 5},
		{ID: 4, Name: "Amakha Signature Cologne", Category: enums.ProductCategoryCologne, Description: "Premium eau de parfum with notes of bergamot, jasmine and musk. Our signature scent for the modern individual.", Price: price("2499.00"), Stock: 30, ImageURL: "/products/colognehi.jpg", ReviewCount: 24, Rating: 5},
		{ID: 5, Name: "Amakha Royal Oud Cologne", Category: enums.ProductCategoryCologne, Description: "Luxurious oud-based cologne with amber and rose. Long-lasting oriental fragrance.", Price: price("2999.00"), Stock: 25, ImageURL: "/products/product_11_1765189986.jpg", ReviewCount: 10, Rating: 5},
		{ID: 6, Name: "Amakha Fresh Sport Cologne", Category: enums.ProductCategoryCologne, Description: "Energizing citrus cologne with mint and marine notes. Perfect for active lifestyles.", Price: price("2199.00"), Stock: 45, ImageURL: "/products/product_12_1764931738.jpg", ReviewCount: 5, Rating: 4},
		{ID: 7, Name: "Amakha Premium Black T-Shirt", Category: enums.ProductCategoryClothing, Description: "High-quality cotton t-shirt with embroidered gold Amakha logo. Available in sizes S-XXL.", Price: price("899.00"), Stock: 100, ImageURL: "/products/tee.jpg", ReviewCount: 32, Rating: 4.5},
		{ID: 8, Name: "Amakha Gold Edition T-Shirt", Category: enums.ProductCategoryClothing, Description: "Limited edition t-shirt with metallic gold print. Premium fabric blend for maximum comfort.", Price: price("1099.00"), Stock: 60, ImageURL: "/products/hoodie.jpg", ReviewCount: 18, Rating: 5},
		{ID: 9, Name: "Amakha Classic Polo Shirt", Category: enums.ProductCategoryClothing, Description: "Elegant polo shirt with subtle Amakha branding. Perfect for casual elegance.", Price: price("1299.00"), Stock: 80, ImageURL: "/products/hanger.jpg", ReviewCount: 7, Rating: 4},
		{ID: 10, Name: "Amakha Luxury Hoodie", Category: enums.ProductCategoryClothing, Description: "Premium fleece hoodie with embroidered logo. Comfortable and stylish.", Price: price("1899.00"), Stock: 50, ImageURL: "/products/hoodie.jpg", ReviewCount: 22, Rating: 5},
	}
}

func mockOrders() []orders.Order {
	return []orders.Order{
		{
			ID:            "ORD-10001",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			CustomerPhone: "+27 82 123 4567",
			Address:       "123 Main Street",
			City:          "Cape Town",
			Items: []orders.OrderItem{
				{ProductID: 1, ProductName: "Amakha Black Oud Car Perfume", Quantity: 2, Price: price("1299")},
				{ProductID: 7, ProductName: "Amakha Premium Black T-Shirt", Quantity: 1, Price: price("899")},
			},
			Total:     price("3497"),
			Status:    enums.OrderStatusPending,
			CreatedAt: time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-10002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "+27 83 456 7890",
			Address:       "456 Oak Avenue",
			City:          "Johannesburg",
			Items: []orders.OrderItem{
				{ProductID: 4, ProductName: "Amakha Signature Cologne", Quantity: 1, Price: price("2499")},
			},
			Total:     price("2499"),
			Status:    enums.OrderStatusProcessing,
			CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-10003",
			CustomerName:  "Mike Johnson",
			CustomerEmail: "mike@example.com",
			CustomerPhone: "+27 84 789 0123",
			Address:       "789 Pine Road",
			City:          "Durban",
			Items: []orders.OrderItem{
				{ProductID: 10, ProductName: "Amakha Luxury Hoodie", Quantity: 2, Price: price("1899")},
			},
			Total:     price("3798"),
			Status:    enums.OrderStatusShipped,
			CreatedAt: time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}
