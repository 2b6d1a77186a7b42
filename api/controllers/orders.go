package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/amakha/storefront-backend/api/middleware"
	"github.com/amakha/storefront-backend/api/responses"
	"github.com/amakha/storefront-backend/api/validators"
	ordersvc "github.com/amakha/storefront-backend/internal/orders"
	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
	"github.com/amakha/storefront-backend/pkg/pagination"
)

// GetOrder returns a single order for tracking.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orderID := strings.TrimSpace(chi.URLParam(r, "orderID"))
		if orderID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id"))
			return
		}

		order, err := svc.GetOrder(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// FindOrders returns the orders placed under an email address, newest first.
func FindOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if email == "" {
			email = middleware.EmailFromContext(r.Context())
		}
		if email == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "email query parameter required"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"orders": svc.FindByEmail(r.Context(), email),
		})
	}
}

type orderListResponse struct {
	Orders []ordersvc.Order `json:"orders"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// AdminListOrders returns every order, newest first.
func AdminListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		all := svc.ListOrders(r.Context())
		params := pagination.FromRequest(r)
		start, end := params.Bounds(len(all))

		responses.WriteSuccess(w, orderListResponse{
			Orders: all[start:end],
			Total:  len(all),
			Limit:  pagination.NormalizeLimit(params.Limit),
			Offset: params.Offset,
		})
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminUpdateOrderStatus advances an order through its lifecycle.
func AdminUpdateOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		orderID := strings.TrimSpace(chi.URLParam(r, "orderID"))
		if orderID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid order id"))
			return
		}

		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateStatus(r.Context(), orderID, enums.OrderStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
