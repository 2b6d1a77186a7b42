package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	checkoutsvc "github.com/amakha/storefront-backend/internal/checkout"
	ordersvc "github.com/amakha/storefront-backend/internal/orders"
	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
)

type stubCheckoutService struct {
	placed *checkoutsvc.CustomerInfo
	err    error
}

func (s *stubCheckoutService) Checkout(ctx context.Context, info checkoutsvc.CustomerInfo) (ordersvc.Order, error) {
	if s.err != nil {
		return ordersvc.Order{}, s.err
	}
	s.placed = &info
	return ordersvc.Order{
		ID:            "ORD-10004",
		CustomerName:  info.Name,
		CustomerEmail: info.Email,
		Status:        enums.OrderStatusPending,
		Total:         decimal.RequireFromString("2598.00"),
	}, nil
}

func checkoutBody() string {
	return `{"name":"Maria Silva","email":"maria@example.com","phone":"+55 11 99999-0000","address":"Rua das Flores 100","city":"Sao Paulo"}`
}

func TestCheckout(t *testing.T) {
	t.Run("places order", func(t *testing.T) {
		stub := &stubCheckoutService{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody()))
		rec := httptest.NewRecorder()
		Checkout(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
		}
		var envelope struct {
			Data ordersvc.Order `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if envelope.Data.ID != "ORD-10004" {
			t.Fatalf("unexpected order id %s", envelope.Data.ID)
		}
		if stub.placed == nil || stub.placed.City != "Sao Paulo" {
			t.Fatalf("expected customer info recorded, got %+v", stub.placed)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody()))
		rec := httptest.NewRecorder()
		Checkout(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		body := `{"name":"Maria","email":"not-an-email","phone":"1","address":"a","city":"b"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
		rec := httptest.NewRecorder()
		Checkout(&stubCheckoutService{}, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		Checkout(&stubCheckoutService{}, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}
