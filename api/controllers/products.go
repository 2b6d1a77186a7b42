package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/amakha/storefront-backend/api/responses"
	"github.com/amakha/storefront-backend/api/validators"
	catalogsvc "github.com/amakha/storefront-backend/internal/catalog"
	"github.com/amakha/storefront-backend/pkg/enums"
	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
	"github.com/amakha/storefront-backend/pkg/pagination"
)

type productListResponse struct {
	Products []catalogsvc.Product `json:"products"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}

// ListProducts returns a page of the catalog.
func ListProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		all := svc.ListProducts(r.Context())
		params := pagination.FromRequest(r)
		start, end := params.Bounds(len(all))

		responses.WriteSuccess(w, productListResponse{
			Products: all[start:end],
			Total:    len(all),
			Limit:    pagination.NormalizeLimit(params.Limit),
			Offset:   params.Offset,
		})
	}
}

// GetProduct returns a single product by id.
func GetProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Stock       int    `json:"stock" validate:"gte=0"`
	ImageURL    string `json:"image_url"`
}

func (req createProductRequest) toCreateInput() (catalogsvc.CreateProductInput, error) {
	category, err := enums.ParseProductCategory(req.Category)
	if err != nil {
		return catalogsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return catalogsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
	}
	return catalogsvc.CreateProductInput{
		Name:        req.Name,
		Category:    category,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}, nil
}

// AdminCreateProduct handles catalog additions from the management panel.
func AdminCreateProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *string  `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

func (req updateProductRequest) toPatch() (catalogsvc.ProductPatch, error) {
	patch := catalogsvc.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		ReviewCount: req.ReviewCount,
		Rating:      req.Rating,
	}
	if req.Category != nil {
		category, err := enums.ParseProductCategory(*req.Category)
		if err != nil {
			return catalogsvc.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		patch.Category = &category
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return catalogsvc.ProductPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
		}
		patch.Price = &price
	}
	return patch, nil
}

// AdminUpdateProduct applies a partial update to a product.
func AdminUpdateProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product from the catalog.
func AdminDeleteProduct(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func productIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
	}
	return id, nil
}
