package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
)

// Monday noon UTC, so 7-day buckets run Tue..Mon.
var dashboardNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

type dashboardFixture struct {
	products  *fakeProductRepo
	users     *fakeUserRepo
	analytics *fakeAnalyticsRepo
	activity  *fakeActivityRepo
	svc       *DashboardService
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		products:  newFakeProductRepo(),
		users:     newFakeUserRepo(),
		analytics: &fakeAnalyticsRepo{},
		activity:  &fakeActivityRepo{},
	}
	f.svc = NewDashboardService(f.products, f.users, f.analytics, f.activity, time.UTC)
	f.svc.now = func() time.Time { return dashboardNow }
	return f
}

func TestGetSalesAnalytics_AggregatesPerDay(t *testing.T) {
	f := newDashboardFixture()
	supplier := uuid.New()

	// Two sales today, one three days ago, nothing else.
	f.analytics.record(dashboardNow.Add(-time.Hour), supplier, "10.00")
	f.analytics.record(dashboardNow.Add(-2*time.Hour), supplier, "5.50")
	f.analytics.record(dashboardNow.AddDate(0, 0, -3), supplier, "7.25")

	data, err := f.svc.GetSalesAnalytics(context.Background(), "7d", nil)
	require.NoError(t, err)
	require.Len(t, data.Data, 7)

	today := data.Data[6]
	assert.Equal(t, "Mon", today.Name)
	assert.Equal(t, int64(2), today.Orders)
	assert.InDelta(t, 15.5, today.Value, 1e-9)

	threeDaysAgo := data.Data[3]
	assert.Equal(t, int64(1), threeDaysAgo.Orders)
	assert.InDelta(t, 7.25, threeDaysAgo.Value, 1e-9)

	// Untouched days stay at zero rather than being dropped.
	assert.Equal(t, int64(0), data.Data[0].Orders)
	assert.Zero(t, data.Data[0].Value)

	assert.InDelta(t, 22.75, data.TotalValue, 1e-9)
}

func TestGetSalesAnalytics_CountsOnlyCompletedSales(t *testing.T) {
	f := newDashboardFixture()
	supplier := uuid.New()

	f.analytics.record(dashboardNow.Add(-time.Hour), supplier, "10.00")
	f.analytics.recordWithStatus(dashboardNow.Add(-time.Hour), supplier, "99.00", enum.SaleStatusPending)
	f.analytics.recordWithStatus(dashboardNow.Add(-2*time.Hour), supplier, "50.00", enum.SaleStatusRejected)

	data, err := f.svc.GetSalesAnalytics(context.Background(), "7d", nil)
	require.NoError(t, err)
	require.Len(t, data.Data, 7)

	today := data.Data[6]
	assert.Equal(t, int64(1), today.Orders)
	assert.InDelta(t, 10.0, today.Value, 1e-9)
	assert.InDelta(t, 10.0, data.TotalValue, 1e-9)
}

func TestGetSalesAnalytics_EmptyWindowIsAllZeros(t *testing.T) {
	f := newDashboardFixture()

	data, err := f.svc.GetSalesAnalytics(context.Background(), "7d", nil)
	require.NoError(t, err)
	require.Len(t, data.Data, 7)

	for _, point := range data.Data {
		assert.Equal(t, int64(0), point.Orders)
		assert.Zero(t, point.Value)
	}
	assert.Zero(t, data.TotalValue)
}

func TestGetSalesAnalytics_UnknownPeriodFallsBackToSevenDays(t *testing.T) {
	f := newDashboardFixture()

	for _, period := range []string{"", "60d", "week", "7D"} {
		data, err := f.svc.GetSalesAnalytics(context.Background(), period, nil)
		require.NoError(t, err)
		assert.Len(t, data.Data, 7, "period=%q", period)
	}
}

func TestGetSalesAnalytics_LongerPeriods(t *testing.T) {
	f := newDashboardFixture()

	data, err := f.svc.GetSalesAnalytics(context.Background(), "30d", nil)
	require.NoError(t, err)
	require.Len(t, data.Data, 30)
	assert.Equal(t, "Day 1", data.Data[0].Name)
	assert.Equal(t, "Day 30", data.Data[29].Name)
}

func TestGetSalesAnalytics_SupplierScoping(t *testing.T) {
	f := newDashboardFixture()
	mine := uuid.New()
	other := uuid.New()

	f.analytics.record(dashboardNow.Add(-time.Hour), mine, "10.00")
	f.analytics.record(dashboardNow.Add(-time.Hour), other, "99.99")

	data, err := f.svc.GetSalesAnalytics(context.Background(), "7d", &mine)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, data.TotalValue, 1e-9)
	assert.Equal(t, int64(1), data.Data[6].Orders)
}

func TestGetSalesAnalytics_FailsFastOnFirstError(t *testing.T) {
	f := newDashboardFixture()
	f.analytics.err = errors.New("connection reset")

	data, err := f.svc.GetSalesAnalytics(context.Background(), "7d", nil)
	assert.Error(t, err)
	assert.Nil(t, data)
	// One query per bucket, aborted on the first failure.
	assert.Equal(t, 1, f.analytics.calls)
}

func TestGetAdminDashboard(t *testing.T) {
	f := newDashboardFixture()
	supplier := f.users.add(&entity.User{
		Name:      "Acme Supplies",
		Email:     "acme@example.com",
		Role:      enum.RoleSupplier,
		CreatedAt: dashboardNow.AddDate(0, 0, -2),
	})
	f.users.add(&entity.User{
		Name:      "Root",
		Email:     "admin@example.com",
		Role:      enum.RoleAdmin,
		CreatedAt: dashboardNow.AddDate(0, -2, 0),
	})

	f.products.add(&entity.Product{
		SupplierID: supplier.ID,
		Name:       "Widget",
		SKU:        "SKU-1",
		Stock:      50,
		Status:     enum.ProductStatusInStock,
		CreatedAt:  dashboardNow.AddDate(0, 0, -1),
	})
	f.products.add(&entity.Product{
		SupplierID: supplier.ID,
		Name:       "Bolt",
		SKU:        "SKU-2",
		Stock:      3,
		Status:     enum.ProductStatusLowStock,
		CreatedAt:  dashboardNow.AddDate(0, -2, 0),
	})
	f.products.add(&entity.Product{
		SupplierID: supplier.ID,
		Name:       "Nut",
		SKU:        "SKU-3",
		Stock:      0,
		Status:     enum.ProductStatusOutOfStock,
		CreatedAt:  dashboardNow.AddDate(0, 0, -10),
	})

	f.analytics.record(dashboardNow.Add(-time.Hour), supplier.ID, "100.00")
	f.analytics.record(dashboardNow.AddDate(0, 0, -2), supplier.ID, "50.00")
	// Previous 7-day window.
	f.analytics.record(dashboardNow.AddDate(0, 0, -10), supplier.ID, "75.00")

	for i := 0; i < 15; i++ {
		require.NoError(t, f.activity.Create(context.Background(), &entity.Activity{
			UserID: supplier.ID,
			Action: "product.updated",
		}))
	}

	data, err := f.svc.GetAdminDashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Cards, 4)
	assert.Equal(t, "Total Products", data.Cards[0].Title)
	assert.Equal(t, float64(3), data.Cards[0].Value)
	assert.Equal(t, "Total Users", data.Cards[1].Title)
	assert.Equal(t, float64(2), data.Cards[1].Value)
	assert.Equal(t, float64(2), data.Cards[2].Value, "orders in current 7-day window")
	assert.InDelta(t, 150.0, data.Cards[3].Value, 1e-9, "revenue in current 7-day window")

	require.NotNil(t, data.Cards[2].Trend)
	assert.Equal(t, "100.0", data.Cards[2].Trend.Percent)
	assert.Equal(t, TrendUp, data.Cards[2].Trend.Direction)

	require.Len(t, data.Metrics, 3)
	assert.Equal(t, "Low Stock", data.Metrics[0].Label)
	assert.Equal(t, int64(1), data.Metrics[0].Value)
	assert.Equal(t, "Out of Stock", data.Metrics[1].Label)
	assert.Equal(t, int64(1), data.Metrics[1].Value)
	assert.Equal(t, "New Products", data.Metrics[2].Label)
	assert.Equal(t, int64(1), data.Metrics[2].Value, "only products added this week")

	assert.Len(t, data.SalesData, 7)
	assert.Len(t, data.Activities, 10, "activity feed is capped")

	assert.Equal(t, int64(1), data.Summary.Admins)
	assert.Equal(t, int64(1), data.Summary.Suppliers)
	assert.Equal(t, int64(1), data.Summary.NewUsers)
	assert.Equal(t, int64(2), data.Summary.TotalOrders)
	assert.InDelta(t, 150.0, data.Summary.TotalValue, 1e-9)
}

func TestGetAdminDashboard_PropagatesQueryFailure(t *testing.T) {
	f := newDashboardFixture()
	f.products.err = errors.New("relation does not exist")

	data, err := f.svc.GetAdminDashboard(context.Background())
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestGetSupplierDashboard_ScopesToSupplier(t *testing.T) {
	f := newDashboardFixture()
	mine := uuid.New()
	other := uuid.New()

	f.products.add(&entity.Product{
		SupplierID: mine,
		Name:       "Widget",
		SKU:        "SKU-1",
		Stock:      50,
		Status:     enum.ProductStatusInStock,
		CreatedAt:  dashboardNow.AddDate(0, 0, -1),
	})
	f.products.add(&entity.Product{
		SupplierID: other,
		Name:       "Gadget",
		SKU:        "SKU-2",
		Stock:      50,
		Status:     enum.ProductStatusInStock,
		CreatedAt:  dashboardNow.AddDate(0, 0, -1),
	})

	f.analytics.record(dashboardNow.Add(-time.Hour), mine, "40.00")
	f.analytics.record(dashboardNow.Add(-time.Hour), other, "999.00")

	require.NoError(t, f.activity.Create(context.Background(), &entity.Activity{UserID: mine, Action: "sale.recorded"}))
	require.NoError(t, f.activity.Create(context.Background(), &entity.Activity{UserID: other, Action: "sale.recorded"}))

	data, err := f.svc.GetSupplierDashboard(context.Background(), mine)
	require.NoError(t, err)

	require.Len(t, data.Cards, 3)
	assert.Equal(t, "My Products", data.Cards[0].Title)
	assert.Equal(t, float64(1), data.Cards[0].Value)
	assert.InDelta(t, 40.0, data.Cards[2].Value, 1e-9)

	require.Len(t, data.Activities, 1)
	assert.Equal(t, mine, data.Activities[0].UserID)

	assert.Equal(t, int64(1), data.Summary.TotalOrders)
	assert.InDelta(t, 40.0, data.Summary.TotalValue, 1e-9)
	assert.Zero(t, data.Summary.Admins)
	assert.Zero(t, data.Summary.NewUsers)
}
