package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest represents the sale creation request body
type RecordSaleRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	// TotalAmount overrides unit price * quantity when present.
	TotalAmount *decimal.Decimal `json:"total_amount"`
	OccurredAt  *time.Time       `json:"occurred_at"`
}

// UpdateSaleStatusRequest represents the sale status change request body
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
