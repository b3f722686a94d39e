package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/pkg/apperror"
	"github.com/hong-layeang/quickstock-api/pkg/utils"
)

// ProductService handles product management. Admins operate on every
// product; suppliers only on their own.
type ProductService struct {
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, activityRepo repository.ActivityRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		activityRepo: activityRepo,
	}
}

// Actor identifies who performs an operation and with which role.
type Actor struct {
	ID   uuid.UUID
	Role enum.Role
}

// scope returns the supplier filter for the actor: admins see everything,
// suppliers only their own rows.
func (a Actor) scope() *uuid.UUID {
	if a.Role == enum.RoleAdmin {
		return nil
	}
	id := a.ID
	return &id
}

// ListProducts returns products visible to the actor
func (s *ProductService) ListProducts(ctx context.Context, actor Actor, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	params.SupplierID = actor.scope()
	return s.productRepo.List(ctx, params)
}

// GetProduct returns one product, enforcing ownership for suppliers
func (s *ProductService) GetProduct(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if actor.Role != enum.RoleAdmin && product.SupplierID != actor.ID {
		return nil, apperror.ErrForbidden
	}
	return product, nil
}

// GetLowStock returns products below the low-stock threshold
func (s *ProductService) GetLowStock(ctx context.Context, actor Actor) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, actor.scope())
}

// CreateProductInput represents a new product
type CreateProductInput struct {
	Name      string
	SKU       string
	Category  string
	UnitPrice decimal.Decimal
	Stock     int
	// SupplierID is honored only for admin callers; suppliers always
	// create products under their own account.
	SupplierID *uuid.UUID
}

// CreateProduct creates a product owned by the actor (or, for admins, by
// the given supplier)
func (s *ProductService) CreateProduct(ctx context.Context, actor Actor, input *CreateProductInput) (*entity.Product, error) {
	if input.UnitPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	} else {
		existing, err := s.productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("SKU already in use")
		}
	}

	ownerID := actor.ID
	if actor.Role == enum.RoleAdmin && input.SupplierID != nil {
		ownerID = *input.SupplierID
	}

	product := &entity.Product{
		SupplierID: ownerID,
		Name:       input.Name,
		SKU:        sku,
		Category:   input.Category,
		UnitPrice:  input.UnitPrice,
	}
	product.ApplyStock(input.Stock)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actor.ID, "product.created", product.Name)
	return product, nil
}

// UpdateProductInput represents a product update
type UpdateProductInput struct {
	Name         string
	Category     string
	UnitPrice    *decimal.Decimal
	Discontinued *bool
}

// UpdateProduct updates product fields; stock changes go through
// UpdateStock instead.
func (s *ProductService) UpdateProduct(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.Discontinued != nil {
		if *input.Discontinued {
			product.Status = enum.ProductStatusDiscontinued
		} else {
			product.Status = enum.ProductStatusForStock(product.Stock)
		}
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actor.ID, "product.updated", product.Name)
	return product, nil
}

// UpdateStock sets a product's stock level and re-derives its status
func (s *ProductService) UpdateStock(ctx context.Context, actor Actor, id uuid.UUID, stock int) (*entity.Product, error) {
	if stock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	product, err := s.GetProduct(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	product.ApplyStock(stock)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actor.ID, "product.stock_updated", product.Name)
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, actor Actor, id uuid.UUID) error {
	product, err := s.GetProduct(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	recordActivity(ctx, s.activityRepo, actor.ID, "product.deleted", product.Name)
	return nil
}
