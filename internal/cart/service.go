package cart

import (
	"context"
	"fmt"

	"github.com/amakha/storefront-backend/internal/catalog"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProductGetter is the slice of the catalog the cart needs to snapshot
// products at add time.
type ProductGetter interface {
	Get(id int64) (catalog.Product, bool)
}

// Summary is the cart state returned to the client.
type Summary struct {
	Items []Line          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Service exposes cart operations to the HTTP layer.
type Service interface {
	Fetch(ctx context.Context) Summary
	AddItem(ctx context.Context, productID int64) (Summary, error)
	UpdateQuantity(ctx context.Context, productID int64, quantity int) (Summary, error)
	RemoveItem(ctx context.Context, productID int64) (Summary, error)
	Clear(ctx context.Context) Summary
}

type service struct {
	store   *Store
	catalog ProductGetter
	logg    *logger.Logger
}

func NewService(store *Store, products ProductGetter, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product getter required")
	}
	return &service{store: store, catalog: products, logg: logg}, nil
}

func (s *service) Fetch(_ context.Context) Summary {
	return s.summary()
}

// AddItem resolves the product from the catalog and snapshots it into the
// cart. Unknown products surface NOT_FOUND rather than silently vanishing,
// since the id came from the client rather than from catalog state.
func (s *service) AddItem(ctx context.Context, productID int64) (Summary, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return Summary{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	s.store.AddItem(product)

	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "product_id", productID), "cart.item_added")
	}
	return s.summary(), nil
}

func (s *service) UpdateQuantity(_ context.Context, productID int64, quantity int) (Summary, error) {
	s.store.UpdateQuantity(productID, quantity)
	return s.summary(), nil
}

func (s *service) RemoveItem(_ context.Context, productID int64) (Summary, error) {
	s.store.RemoveItem(productID)
	return s.summary(), nil
}

func (s *service) Clear(_ context.Context) Summary {
	s.store.Clear()
	return s.summary()
}

func (s *service) summary() Summary {
	return Summary{Items: s.store.Items(), Total: s.store.Total()}
}
