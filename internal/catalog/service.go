package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/amakha/storefront-backend/pkg/errors"
	"github.com/amakha/storefront-backend/pkg/logger"
)

// Service exposes catalog operations to the HTTP layer. It owns the field
// validation the original storefront left to its form layer.
type Service interface {
	ListProducts(ctx context.Context) []Product
	GetProduct(ctx context.Context, id int64) (Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) ListProducts(_ context.Context) []Product {
	return s.repo.List()
}

func (s *service) GetProduct(_ context.Context, id int64) (Product, error) {
	product, ok := s.repo.Get(id)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (Product, error) {
	if err := validateCreate(input); err != nil {
		return Product{}, err
	}

	product := s.repo.Create(input)

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"product_id": product.ID,
			"category":   product.Category.String(),
		})
		s.logg.Info(ctx, "catalog.product_created")
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (Product, error) {
	if err := validatePatch(patch); err != nil {
		return Product{}, err
	}

	product, ok := s.repo.Update(id, patch)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "product_id", id), "catalog.product_updated")
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	if !s.repo.Delete(id) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "product_id", id), "catalog.product_deleted")
	}
	return nil
}

func validateCreate(input CreateProductInput) error {
	details := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "is required"
	}
	if !input.Category.IsValid() {
		details["category"] = "is invalid"
	}
	if input.Price.IsNegative() {
		details["price"] = "must not be negative"
	}
	if input.Stock < 0 {
		details["stock"] = "must not be negative"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}

func validatePatch(patch ProductPatch) error {
	details := map[string]string{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		details["name"] = "must not be empty"
	}
	if patch.Category != nil && !patch.Category.IsValid() {
		details["category"] = "is invalid"
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		details["price"] = "must not be negative"
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		details["stock"] = "must not be negative"
	}
	if patch.ReviewCount != nil && *patch.ReviewCount < 0 {
		details["review_count"] = "must not be negative"
	}
	if patch.Rating != nil && (*patch.Rating < 0 || *patch.Rating > 5) {
		details["rating"] = "must be between 0 and 5"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}
