package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents an inventory item owned by a supplier.
type Product struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID uuid.UUID          `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Name       string             `gorm:"size:255;not null" json:"name"`
	SKU        string             `gorm:"size:100;unique;not null" json:"sku"`
	Category   string             `gorm:"size:100" json:"category"`
	UnitPrice  decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"unit_price"`
	Stock      int                `gorm:"not null;default:0" json:"stock"`
	Status     enum.ProductStatus `gorm:"size:50;not null;default:'in-stock';index" json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Supplier User   `gorm:"foreignKey:SupplierID" json:"-"`
	Sales    []Sale `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ApplyStock sets the stock level and re-derives the status.
// Discontinued products keep their status regardless of stock.
func (p *Product) ApplyStock(stock int) {
	p.Stock = stock
	if p.Status != enum.ProductStatusDiscontinued {
		p.Status = enum.ProductStatusForStock(stock)
	}
}
