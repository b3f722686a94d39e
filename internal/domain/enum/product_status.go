package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductStatus represents the stock status of a product.
type ProductStatus string

const (
	ProductStatusInStock      ProductStatus = "in-stock"
	ProductStatusLowStock     ProductStatus = "low-stock"
	ProductStatusOutOfStock   ProductStatus = "out-of-stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// LowStockThreshold is the stock level below which a product is flagged low-stock.
const LowStockThreshold = 10

// ProductStatusForStock derives the status from a stock level.
// Discontinued is sticky and never derived here; it is set explicitly.
func ProductStatusForStock(stock int) ProductStatus {
	switch {
	case stock == 0:
		return ProductStatusOutOfStock
	case stock < LowStockThreshold:
		return ProductStatusLowStock
	default:
		return ProductStatusInStock
	}
}

// IsValid reports whether the status is one of the known values.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusInStock, ProductStatusLowStock, ProductStatusOutOfStock, ProductStatusDiscontinued:
		return true
	}
	return false
}

func (s ProductStatus) String() string {
	return string(s)
}

func (s ProductStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ProductStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ProductStatus(str)
	return nil
}

func (s ProductStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ProductStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ProductStatusInStock
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ProductStatus(v)
	case []byte:
		*s = ProductStatus(string(v))
	}
	return nil
}
