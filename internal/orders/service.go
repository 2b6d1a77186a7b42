package orders

import (
	"context"
	"fmt"

	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
)

// Service exposes order reads and the admin status operation. Unlike the
// repository it enforces the order lifecycle: pending -> processing ->
// shipped -> delivered, cancellable from any non-terminal state.
type Service interface {
	GetOrder(ctx context.Context, orderID string) (Order, error)
	ListOrders(ctx context.Context) []Order
	FindByEmail(ctx context.Context, email string) []Order
	UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (Order, error)
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) GetOrder(_ context.Context, orderID string) (Order, error) {
	order, ok := s.repo.GetByID(orderID)
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) ListOrders(_ context.Context) []Order {
	return s.repo.List()
}

func (s *service) FindByEmail(_ context.Context, email string) []Order {
	return s.repo.GetByEmail(email)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (Order, error) {
	if !status.IsValid() {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid order status %q", status))
	}

	current, ok := s.repo.GetByID(orderID)
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	if !current.Status.CanTransitionTo(status) {
		return Order{}, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", current.Status, status),
		).WithDetails(map[string]string{
			"from": current.Status.String(),
			"to":   status.String(),
		})
	}

	updated, ok := s.repo.UpdateStatus(orderID, status)
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id": orderID,
			"from":     current.Status.String(),
			"to":       status.String(),
		})
		s.logg.Info(ctx, "orders.status_updated")
	}
	return updated, nil
}
