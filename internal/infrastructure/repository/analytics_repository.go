package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	domainRepo "github.com/hong-layeang/quickstock-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

type salesTotalsRow struct {
	Orders int64
	Value  sql.NullString
}

// SalesTotalsBetween aggregates completed sales inside [start, end].
// Pending and rejected sales never count toward the totals.
func (r *analyticsRepository) SalesTotalsBetween(ctx context.Context, start, end time.Time, supplierID *uuid.UUID) (*domainRepo.SalesTotals, error) {
	var row salesTotalsRow

	query := `
		SELECT COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS value
		FROM sales
		WHERE status = ?
		AND occurred_at BETWEEN ? AND ?
		AND deleted_at IS NULL`
	args := []interface{}{enum.SaleStatusCompleted, start, end}

	if supplierID != nil {
		query += ` AND supplier_id = ?`
		args = append(args, *supplierID)
	}

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return nil, err
	}

	value := decimal.Zero
	if row.Value.Valid {
		parsed, err := decimal.NewFromString(row.Value.String)
		if err != nil {
			return nil, err
		}
		value = parsed
	}

	return &domainRepo.SalesTotals{
		Orders: row.Orders,
		Value:  value,
	}, nil
}
