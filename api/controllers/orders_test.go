package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amakha/storefront-backend/api/middleware"

	ordersvc "github.com/amakha/storefront-backend/internal/orders"
	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
)

type stubOrderService struct {
	orders     []ordersvc.Order
	lastStatus enums.OrderStatus
}

func (s *stubOrderService) GetOrder(ctx context.Context, orderID string) (ordersvc.Order, error) {
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return ordersvc.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrderService) ListOrders(ctx context.Context) []ordersvc.Order { return s.orders }

func (s *stubOrderService) FindByEmail(ctx context.Context, email string) []ordersvc.Order {
	var found []ordersvc.Order
	for _, o := range s.orders {
		if strings.EqualFold(o.CustomerEmail, email) {
			found = append(found, o)
		}
	}
	return found
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, orderID string, status enums.OrderStatus) (ordersvc.Order, error) {
	if !status.IsValid() {
		return ordersvc.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return ordersvc.Order{}, err
	}
	if !order.Status.CanTransitionTo(status) {
		return ordersvc.Order{}, pkgerrors.New(pkgerrors.CodeStateConflict, "status transition not allowed")
	}
	s.lastStatus = status
	order.Status = status
	return order, nil
}

func sampleOrders() []ordersvc.Order {
	return []ordersvc.Order{
		{
			ID:            "ORD-10001",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Status:        enums.OrderStatusPending,
			Total:         decimal.RequireFromString("3497"),
			CreatedAt:     time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-10002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Status:        enums.OrderStatusProcessing,
			Total:         decimal.RequireFromString("2499"),
			CreatedAt:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestGetOrder(t *testing.T) {
	stub := &stubOrderService{orders: sampleOrders()}

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-10001", nil)
		req = withURLParam(req, "orderID", "ORD-10001")
		rec := httptest.NewRecorder()
		GetOrder(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data ordersvc.Order `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if envelope.Data.CustomerName != "John Doe" {
			t.Fatalf("unexpected order %+v", envelope.Data)
		}
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-99999", nil)
		req = withURLParam(req, "orderID", "ORD-99999")
		rec := httptest.NewRecorder()
		GetOrder(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
	})
}

func TestFindOrders(t *testing.T) {
	stub := &stubOrderService{orders: sampleOrders()}

	t.Run("by email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?email=JOHN@example.com", nil)
		rec := httptest.NewRecorder()
		FindOrders(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data struct {
				Orders []ordersvc.Order `json:"orders"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].ID != "ORD-10001" {
			t.Fatalf("unexpected orders %+v", envelope.Data.Orders)
		}
	})

	t.Run("defaults to session email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req = req.WithContext(middleware.WithEmail(req.Context(), "jane@example.com"))
		rec := httptest.NewRecorder()
		FindOrders(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Data struct {
				Orders []ordersvc.Order `json:"orders"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].ID != "ORD-10002" {
			t.Fatalf("unexpected orders %+v", envelope.Data.Orders)
		}
	})

	t.Run("requires email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rec := httptest.NewRecorder()
		FindOrders(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}

func TestAdminListOrders(t *testing.T) {
	stub := &stubOrderService{orders: sampleOrders()}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?limit=1", nil)
	rec := httptest.NewRecorder()

	AdminListOrders(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Data orderListResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Total != 2 || len(envelope.Data.Orders) != 1 {
		t.Fatalf("unexpected listing %+v", envelope.Data)
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		stub := &stubOrderService{orders: sampleOrders()}
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/ORD-10001/status", strings.NewReader(`{"status":"processing"}`))
		req = withURLParam(req, "orderID", "ORD-10001")
		rec := httptest.NewRecorder()
		AdminUpdateOrderStatus(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastStatus != enums.OrderStatusProcessing {
			t.Fatalf("expected processing, got %s", stub.lastStatus)
		}
	})

	t.Run("skipping a stage", func(t *testing.T) {
		stub := &stubOrderService{orders: sampleOrders()}
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/ORD-10001/status", strings.NewReader(`{"status":"delivered"}`))
		req = withURLParam(req, "orderID", "ORD-10001")
		rec := httptest.NewRecorder()
		AdminUpdateOrderStatus(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 got %d", rec.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		stub := &stubOrderService{orders: sampleOrders()}
		req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/ORD-10001/status", strings.NewReader(`{"status":"lost"}`))
		req = withURLParam(req, "orderID", "ORD-10001")
		rec := httptest.NewRecorder()
		AdminUpdateOrderStatus(stub, testLogger()).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}
