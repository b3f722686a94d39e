package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/pkg/apperror"
)

// SaleService handles sale recording and status transitions
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	activityRepo repository.ActivityRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, activityRepo repository.ActivityRepository) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
	}
}

// ListSales returns sales visible to the actor
func (s *SaleService) ListSales(ctx context.Context, actor Actor, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	params.SupplierID = actor.scope()
	return s.saleRepo.List(ctx, params)
}

// GetSale returns one sale, enforcing ownership for suppliers
func (s *SaleService) GetSale(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if actor.Role != enum.RoleAdmin && sale.SupplierID != actor.ID {
		return nil, apperror.ErrForbidden
	}
	return sale, nil
}

// RecordSaleInput represents a new sale
type RecordSaleInput struct {
	ProductID uuid.UUID
	Quantity  int
	// TotalAmount overrides the computed unit price * quantity when set,
	// covering discounted sales.
	TotalAmount *decimal.Decimal
	// OccurredAt defaults to now when zero.
	OccurredAt time.Time
}

// RecordSale creates a pending sale against one of the actor's products.
// Stock is not touched until the sale is completed.
func (s *SaleService) RecordSale(ctx context.Context, actor Actor, input *RecordSaleInput) (*entity.Sale, error) {
	if input.Quantity < 1 {
		return nil, apperror.NewBadRequestError("Quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if actor.Role != enum.RoleAdmin && product.SupplierID != actor.ID {
		return nil, apperror.ErrForbidden
	}
	if product.Status == enum.ProductStatusDiscontinued {
		return nil, apperror.NewBadRequestError("Product is discontinued")
	}
	if product.Stock < input.Quantity {
		return nil, apperror.NewBadRequestError("Insufficient stock")
	}

	totalAmount := product.UnitPrice.Mul(decimal.NewFromInt(int64(input.Quantity)))
	if input.TotalAmount != nil {
		if input.TotalAmount.IsNegative() {
			return nil, apperror.NewBadRequestError("Total amount cannot be negative")
		}
		totalAmount = *input.TotalAmount
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	sale := &entity.Sale{
		ProductID:   product.ID,
		SupplierID:  product.SupplierID,
		Quantity:    input.Quantity,
		TotalAmount: totalAmount,
		Status:      enum.SaleStatusPending,
		OccurredAt:  occurredAt,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actor.ID, "sale.recorded",
		fmt.Sprintf("%s x%d", product.Name, input.Quantity))
	return sale, nil
}

// UpdateSaleStatus moves a sale from pending to completed or rejected.
// Completing a sale decrements the product's stock atomically.
func (s *SaleService) UpdateSaleStatus(ctx context.Context, actor Actor, id uuid.UUID, next enum.SaleStatus) (*entity.Sale, error) {
	if !next.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid sale status")
	}

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if !sale.Status.CanTransitionTo(next) {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Cannot move sale from %s to %s", sale.Status, next))
	}

	if next == enum.SaleStatusCompleted {
		ok, err := s.productRepo.AtomicDecrementStock(ctx, sale.ProductID, sale.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.NewConflictError("Insufficient stock to complete sale")
		}
		if err := s.refreshProductStatus(ctx, sale.ProductID); err != nil {
			return nil, err
		}
	}

	sale.Status = next
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.activityRepo, actor.ID, "sale."+next.String(), sale.ID.String())
	return sale, nil
}

// refreshProductStatus re-derives a product's stock status after its stock
// level changed outside the entity.
func (s *SaleService) refreshProductStatus(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	product.ApplyStock(product.Stock)
	return s.productRepo.Update(ctx, product)
}
