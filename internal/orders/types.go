package orders

import (
	"time"

	"github.com/amakha/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// OrderItem is one line captured at order time. Items never change after the
// order is created.
type OrderItem struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Order is a placed order. Everything except Status is immutable once stored.
type Order struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerPhone string            `json:"customerPhone"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	Items         []OrderItem       `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Status        enums.OrderStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
