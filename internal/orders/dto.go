package orders

import "github.com/shopspring/decimal"

// CreateOrderInput carries the checkout snapshot for a new order. The total
// is computed by the caller and stored as-is, matching the storefront's
// contract of trusting the checkout-time figure.
type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	City          string
	Items         []OrderItem
	Total         decimal.Decimal
}
