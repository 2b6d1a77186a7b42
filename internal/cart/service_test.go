package cart

import (
	"context"
	"testing"

	"github.com/amakha/storefront-backend/internal/catalog"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

type stubCatalog struct {
	products map[int64]catalog.Product
}

func (s *stubCatalog) Get(id int64) (catalog.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func newTestService(t *testing.T) (Service, *Store) {
	t.Helper()
	store := NewStore()
	svc, err := NewService(store, &stubCatalog{products: map[int64]catalog.Product{
		1: product(1, "1299.00"),
		7: product(7, "899.00"),
	}}, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, store
}

func TestServiceAddItemResolvesCatalogProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	summary, err := svc.AddItem(ctx, 1)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(summary.Items) != 1 || summary.Items[0].ID != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	summary, err = svc.AddItem(ctx, 1)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if summary.Items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2 got %d", summary.Items[0].Quantity)
	}
	if !summary.Total.Equal(decimal.RequireFromString("2598.00")) {
		t.Fatalf("expected total 2598.00 got %s", summary.Total)
	}
}

func TestServiceAddItemUnknownProduct(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.AddItem(context.Background(), 404)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND got %v", err)
	}
	if len(store.Items()) != 0 {
		t.Fatalf("failed add must be side-effect free")
	}
}

func TestServiceUpdateAndRemoveAreIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpdateQuantity(ctx, 404, 3); err != nil {
		t.Fatalf("update on unknown id should not fail: %v", err)
	}
	if _, err := svc.RemoveItem(ctx, 404); err != nil {
		t.Fatalf("remove on unknown id should not fail: %v", err)
	}
}

func TestServiceClear(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	summary := svc.Clear(ctx)
	if len(summary.Items) != 0 || !summary.Total.IsZero() {
		t.Fatalf("expected empty summary got %+v", summary)
	}
}
