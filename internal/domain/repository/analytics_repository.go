package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTotals holds the completed-sale aggregate for one time range.
type SalesTotals struct {
	Orders int64
	Value  decimal.Decimal
}

// AnalyticsRepository defines the interface for analytics/aggregation queries.
// All queries are read-only; dashboards never mutate data.
type AnalyticsRepository interface {
	// SalesTotalsBetween returns the count and summed total_amount of
	// completed sales whose occurred_at falls inside [start, end].
	// A non-nil supplierID scopes the aggregate to that supplier's sales.
	// Empty ranges yield zero values, never an error.
	SalesTotalsBetween(ctx context.Context, start, end time.Time, supplierID *uuid.UUID) (*SalesTotals, error)
}
