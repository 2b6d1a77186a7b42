// Package checkout converts the current cart into a placed order.
package checkout

import (
	"context"
	"fmt"

	"github.com/amakha/storefront-backend/internal/cart"
	"github.com/amakha/storefront-backend/internal/orders"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
)

// CustomerInfo is the delivery information collected at checkout.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
}

// Service places an order from the current cart contents.
type Service interface {
	Checkout(ctx context.Context, info CustomerInfo) (orders.Order, error)
}

type service struct {
	cart   *cart.Store
	orders *orders.Repository
	logg   *logger.Logger
}

func NewService(cartStore *cart.Store, ordersRepo *orders.Repository, logg *logger.Logger) (Service, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{cart: cartStore, orders: ordersRepo, logg: logg}, nil
}

// Checkout snapshots the cart lines into order items, stores the order with
// the cart's derived total, and clears the cart. The order keeps the prices
// captured when each line was added.
func (s *service) Checkout(ctx context.Context, info CustomerInfo) (orders.Order, error) {
	lines := s.cart.Items()
	if len(lines) == 0 {
		return orders.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	items := make([]orders.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, orders.OrderItem{
			ProductID:   line.ID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}

	order := s.orders.Create(orders.CreateOrderInput{
		CustomerName:  info.Name,
		CustomerEmail: info.Email,
		CustomerPhone: info.Phone,
		Address:       info.Address,
		City:          info.City,
		Items:         items,
		Total:         s.cart.Total(),
	})
	s.cart.Clear()

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id": order.ID,
			"total":    order.Total.String(),
			"items":    len(order.Items),
		})
		s.logg.Info(ctx, "checkout.order_placed")
	}
	return order, nil
}
