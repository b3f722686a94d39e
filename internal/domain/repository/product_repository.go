package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	Status     *enum.ProductStatus
	// SupplierID scopes the query to one supplier's products; nil means all
	// products (admin views).
	SupplierID *uuid.UUID
}

// ProductCountFilter selects which products a count query covers.
type ProductCountFilter struct {
	SupplierID *uuid.UUID
	Status     *enum.ProductStatus
	// CreatedAfter restricts the count to products created at or after the
	// given instant.
	CreatedAfter *time.Time
	// CreatedBefore restricts the count to products created before the
	// given instant.
	CreatedBefore *time.Time
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context, supplierID *uuid.UUID) ([]entity.Product, error)
	Count(ctx context.Context, filter *ProductCountFilter) (int64, error)
	// AtomicDecrementStock atomically decrements stock only if sufficient.
	// Returns (true, nil) if successful, (false, nil) if insufficient stock,
	// (false, err) on error.
	AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error)
}
