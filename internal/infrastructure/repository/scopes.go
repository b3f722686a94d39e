package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierScope returns a GORM scope that restricts a query to rows owned
// by the given supplier. A nil supplierID leaves the query unfiltered,
// which is the admin-wide view.
func SupplierScope(supplierID *uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if supplierID == nil {
			return db
		}
		return db.Where("supplier_id = ?", *supplierID)
	}
}
