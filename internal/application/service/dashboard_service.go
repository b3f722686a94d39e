package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
)

// DashboardService assembles dashboard and analytics payloads. It only
// reads; nothing here mutates the store. Any query failure aborts the
// whole assembly and no partial payload is returned.
type DashboardService struct {
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	analyticsRepo repository.AnalyticsRepository
	activityRepo  repository.ActivityRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service. Day buckets are
// computed in loc, which is configured explicitly rather than inherited
// from the host.
func NewDashboardService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	analyticsRepo repository.AnalyticsRepository,
	activityRepo repository.ActivityRepository,
	loc *time.Location,
) *DashboardService {
	return &DashboardService{
		productRepo:   productRepo,
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
		activityRepo:  activityRepo,
		loc:           loc,
		now:           time.Now,
	}
}

// recentActivityLimit caps the activity feed on the dashboard.
const recentActivityLimit = 10

// SalesPoint is one day's aggregated completed sales for the chart.
type SalesPoint struct {
	Name   string  `json:"name"`
	Orders int64   `json:"orders"`
	Value  float64 `json:"value"`
}

// Card is a headline tile: one value, its trend, and static display
// metadata the frontend uses to render it.
type Card struct {
	Title string       `json:"title"`
	Value float64      `json:"value"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`
	Trend *TrendResult `json:"trend,omitempty"`
}

// Metric is a tabular dashboard row: value plus trend.
type Metric struct {
	Label string      `json:"label"`
	Value int64       `json:"value"`
	Trend TrendResult `json:"trend"`
}

// DashboardSummary carries the aggregate footer of the dashboard.
type DashboardSummary struct {
	TotalOrders int64   `json:"total_orders"`
	TotalValue  float64 `json:"total_value"`
	Admins      int64   `json:"admins,omitempty"`
	Suppliers   int64   `json:"suppliers,omitempty"`
	NewUsers    int64   `json:"new_users,omitempty"`
}

// DashboardData is the full dashboard payload.
type DashboardData struct {
	Cards      []Card            `json:"cards"`
	Metrics    []Metric          `json:"metrics"`
	SalesData  []SalesPoint      `json:"salesData"`
	Activities []entity.Activity `json:"activities"`
	Summary    DashboardSummary  `json:"summary"`
}

// AnalyticsData is the standalone analytics payload.
type AnalyticsData struct {
	Data       []SalesPoint `json:"data"`
	TotalValue float64      `json:"totalValue"`
}

// aggregateSales runs one totals query per bucket, in order, failing fast
// on the first error. Empty buckets yield zero counts and zero sums.
func (s *DashboardService) aggregateSales(ctx context.Context, buckets []DayBucket, supplierID *uuid.UUID) ([]SalesPoint, decimal.Decimal, int64, error) {
	points := make([]SalesPoint, 0, len(buckets))
	totalValue := decimal.Zero
	var totalOrders int64

	for _, b := range buckets {
		totals, err := s.analyticsRepo.SalesTotalsBetween(ctx, b.Start, b.End, supplierID)
		if err != nil {
			return nil, decimal.Zero, 0, err
		}
		points = append(points, SalesPoint{
			Name:   b.Label,
			Orders: totals.Orders,
			Value:  totals.Value.InexactFloat64(),
		})
		totalValue = totalValue.Add(totals.Value)
		totalOrders += totals.Orders
	}

	return points, totalValue, totalOrders, nil
}

// GetSalesAnalytics returns the day-bucketed completed-sales series for
// the requested period. Unknown periods silently fall back to 7 days.
// A non-nil supplierID scopes the series to that supplier's sales.
func (s *DashboardService) GetSalesAnalytics(ctx context.Context, period string, supplierID *uuid.UUID) (*AnalyticsData, error) {
	now := s.now().In(s.loc)
	buckets := BuildDayBuckets(now, WindowDaysForPeriod(period))

	points, totalValue, _, err := s.aggregateSales(ctx, buckets, supplierID)
	if err != nil {
		return nil, err
	}

	return &AnalyticsData{
		Data:       points,
		TotalValue: totalValue.InexactFloat64(),
	}, nil
}

// GetAdminDashboard assembles the admin-wide dashboard: headline cards
// with month-over-month trends, stock metrics with week-over-week trends,
// the 7-day sales series, and the newest activity entries.
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*DashboardData, error) {
	now := s.now().In(s.loc)

	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	totalProducts, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{})
	if err != nil {
		return nil, err
	}

	productsThisMonth, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{CreatedAfter: &startOfMonth})
	if err != nil {
		return nil, err
	}
	productsLastMonth, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{
		CreatedAfter:  &startOfLastMonth,
		CreatedBefore: &startOfMonth,
	})
	if err != nil {
		return nil, err
	}

	admins, err := s.userRepo.CountByRole(ctx, enum.RoleAdmin)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.userRepo.CountByRole(ctx, enum.RoleSupplier)
	if err != nil {
		return nil, err
	}
	totalUsers := admins + suppliers

	usersThisMonth, err := s.userRepo.CountCreatedBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	usersLastMonth, err := s.userRepo.CountCreatedBetween(ctx, startOfLastMonth, startOfMonth)
	if err != nil {
		return nil, err
	}
	newUsers, err := s.userRepo.CountCreatedBetween(ctx, sevenDaysAgo, now)
	if err != nil {
		return nil, err
	}

	metrics, err := s.stockMetrics(ctx, nil, sevenDaysAgo, fourteenDaysAgo)
	if err != nil {
		return nil, err
	}

	// Headline orders and revenue compare this 7-day window against the
	// preceding one.
	current, err := s.analyticsRepo.SalesTotalsBetween(ctx, sevenDaysAgo, now, nil)
	if err != nil {
		return nil, err
	}
	previous, err := s.analyticsRepo.SalesTotalsBetween(ctx, fourteenDaysAgo, sevenDaysAgo, nil)
	if err != nil {
		return nil, err
	}

	salesData, totalValue, totalOrders, err := s.aggregateSales(ctx, BuildDayBuckets(now, 7), nil)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListRecent(ctx, nil, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	productTrend := ComputeTrend(float64(productsThisMonth), float64(productsLastMonth))
	userTrend := ComputeTrend(float64(usersThisMonth), float64(usersLastMonth))
	orderTrend := ComputeTrend(float64(current.Orders), float64(previous.Orders))
	revenueTrend := ComputeTrend(current.Value.InexactFloat64(), previous.Value.InexactFloat64())

	return &DashboardData{
		Cards: []Card{
			{Title: "Total Products", Value: float64(totalProducts), Icon: "package", Color: "primary", Trend: &productTrend},
			{Title: "Total Users", Value: float64(totalUsers), Icon: "users", Color: "success", Trend: &userTrend},
			{Title: "Orders (7d)", Value: float64(current.Orders), Icon: "shopping-cart", Color: "info", Trend: &orderTrend},
			{Title: "Revenue (7d)", Value: current.Value.InexactFloat64(), Icon: "dollar-sign", Color: "warning", Trend: &revenueTrend},
		},
		Metrics:    metrics,
		SalesData:  salesData,
		Activities: activities,
		Summary: DashboardSummary{
			TotalOrders: totalOrders,
			TotalValue:  totalValue.InexactFloat64(),
			Admins:      admins,
			Suppliers:   suppliers,
			NewUsers:    newUsers,
		},
	}, nil
}

// GetSupplierDashboard assembles the same payload shape scoped to one
// supplier's products, sales, and activity.
func (s *DashboardService) GetSupplierDashboard(ctx context.Context, supplierID uuid.UUID) (*DashboardData, error) {
	now := s.now().In(s.loc)

	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	totalProducts, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{SupplierID: &supplierID})
	if err != nil {
		return nil, err
	}

	productsThisWeek, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{
		SupplierID:   &supplierID,
		CreatedAfter: &sevenDaysAgo,
	})
	if err != nil {
		return nil, err
	}
	productsLastWeek, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{
		SupplierID:    &supplierID,
		CreatedAfter:  &fourteenDaysAgo,
		CreatedBefore: &sevenDaysAgo,
	})
	if err != nil {
		return nil, err
	}

	metrics, err := s.stockMetrics(ctx, &supplierID, sevenDaysAgo, fourteenDaysAgo)
	if err != nil {
		return nil, err
	}

	current, err := s.analyticsRepo.SalesTotalsBetween(ctx, sevenDaysAgo, now, &supplierID)
	if err != nil {
		return nil, err
	}
	previous, err := s.analyticsRepo.SalesTotalsBetween(ctx, fourteenDaysAgo, sevenDaysAgo, &supplierID)
	if err != nil {
		return nil, err
	}

	salesData, totalValue, totalOrders, err := s.aggregateSales(ctx, BuildDayBuckets(now, 7), &supplierID)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListRecent(ctx, &supplierID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	productTrend := ComputeTrend(float64(productsThisWeek), float64(productsLastWeek))
	orderTrend := ComputeTrend(float64(current.Orders), float64(previous.Orders))
	revenueTrend := ComputeTrend(current.Value.InexactFloat64(), previous.Value.InexactFloat64())

	return &DashboardData{
		Cards: []Card{
			{Title: "My Products", Value: float64(totalProducts), Icon: "package", Color: "primary", Trend: &productTrend},
			{Title: "Orders (7d)", Value: float64(current.Orders), Icon: "shopping-cart", Color: "info", Trend: &orderTrend},
			{Title: "Revenue (7d)", Value: current.Value.InexactFloat64(), Icon: "dollar-sign", Color: "warning", Trend: &revenueTrend},
		},
		Metrics:    metrics,
		SalesData:  salesData,
		Activities: activities,
		Summary: DashboardSummary{
			TotalOrders: totalOrders,
			TotalValue:  totalValue.InexactFloat64(),
		},
	}, nil
}

// stockMetrics builds the low-stock / out-of-stock / new-product rows.
// Trends compare products created in the current 7-day window against the
// preceding window.
func (s *DashboardService) stockMetrics(ctx context.Context, supplierID *uuid.UUID, sevenDaysAgo, fourteenDaysAgo time.Time) ([]Metric, error) {
	lowStock := enum.ProductStatusLowStock
	outOfStock := enum.ProductStatusOutOfStock

	rows := []struct {
		label  string
		status *enum.ProductStatus
	}{
		{"Low Stock", &lowStock},
		{"Out of Stock", &outOfStock},
		{"New Products", nil},
	}

	metrics := make([]Metric, 0, len(rows))
	for _, row := range rows {
		value, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{
			SupplierID: supplierID,
			Status:     row.status,
		})
		if err != nil {
			return nil, err
		}

		currentWindow, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{
			SupplierID:   supplierID,
			Status:       row.status,
			CreatedAfter: &sevenDaysAgo,
		})
		if err != nil {
			return nil, err
		}
		previousWindow, err := s.productRepo.Count(ctx, &repository.ProductCountFilter{
			SupplierID:    supplierID,
			Status:        row.status,
			CreatedAfter:  &fourteenDaysAgo,
			CreatedBefore: &sevenDaysAgo,
		})
		if err != nil {
			return nil, err
		}

		if row.status == nil {
			// "New Products" shows this week's additions, not the total.
			value = currentWindow
		}

		metrics = append(metrics, Metric{
			Label: row.label,
			Value: value,
			Trend: ComputeTrend(float64(currentWindow), float64(previousWindow)),
		})
	}

	return metrics, nil
}
