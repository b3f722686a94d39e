package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents the product creation request body
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Stock     int             `json:"stock"`
	// SupplierID assigns ownership when an admin creates on behalf of a
	// supplier; ignored for supplier callers.
	SupplierID *string `json:"supplier_id"`
}

// UpdateProductRequest represents the product update request body
type UpdateProductRequest struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Discontinued *bool            `json:"discontinued"`
}

// UpdateStockRequest represents the stock update request body
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}
