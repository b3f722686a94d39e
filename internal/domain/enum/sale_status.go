package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the review status of a recorded sale.
// Only completed sales count toward dashboard analytics.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRejected  SaleStatus = "rejected"
)

func (s SaleStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known statuses.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a status change is allowed.
// Only pending sales may be completed or rejected.
func (s SaleStatus) CanTransitionTo(next SaleStatus) bool {
	return s == SaleStatusPending &&
		(next == SaleStatusCompleted || next == SaleStatusRejected)
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SaleStatus(str)
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = SaleStatus(v)
	case []byte:
		*s = SaleStatus(string(v))
	}
	return nil
}
