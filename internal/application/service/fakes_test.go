package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/internal/domain/repository"
	"github.com/hong-layeang/quickstock-api/pkg/pagination"
)

// In-memory repository fakes. They implement just enough behavior for the
// service tests; errors can be injected through the err field.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	err      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	f.products[p.ID] = p
	return p
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	f.add(product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []entity.Product
	for _, p := range f.products {
		if params.SupplierID != nil && p.SupplierID != *params.SupplierID {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetLowStock(ctx context.Context, supplierID *uuid.UUID) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Product
	for _, p := range f.products {
		if supplierID != nil && p.SupplierID != *supplierID {
			continue
		}
		if p.Status == enum.ProductStatusLowStock || p.Status == enum.ProductStatusOutOfStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, filter *repository.ProductCountFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, p := range f.products {
		if filter.SupplierID != nil && p.SupplierID != *filter.SupplierID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.CreatedAfter != nil && p.CreatedAt.Before(*filter.CreatedAfter) {
			continue
		}
		if filter.CreatedBefore != nil && !p.CreatedAt.Before(*filter.CreatedBefore) {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeProductRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	p, ok := f.products[id]
	if !ok || p.Stock < amount {
		return false, nil
	}
	p.Stock -= amount
	return true, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) add(u *entity.User) *entity.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, params *repository.UserFilterParams) ([]entity.User, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []entity.User
	for _, u := range f.users {
		if params.Role != nil && u.Role != *params.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role enum.Role) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, u := range f.users {
		if !u.CreatedAt.Before(start) && !u.CreatedAt.After(end) {
			n++
		}
	}
	return n, nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
	err   error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (f *fakeSaleRepo) add(s *entity.Sale) *entity.Sale {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.sales[s.ID] = s
	return s
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if f.err != nil {
		return f.err
	}
	f.add(sale)
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sales[id], nil
}

func (f *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	if f.err != nil {
		return f.err
	}
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []entity.Sale
	for _, s := range f.sales {
		if params.SupplierID != nil && s.SupplierID != *params.SupplierID {
			continue
		}
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeActivityRepo struct {
	activities []entity.Activity
	err        error
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	if f.err != nil {
		return f.err
	}
	f.activities = append(f.activities, *activity)
	return nil
}

func (f *fakeActivityRepo) ListRecent(ctx context.Context, userID *uuid.UUID, limit int) ([]entity.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Activity
	for i := len(f.activities) - 1; i >= 0 && len(out) < limit; i-- {
		a := f.activities[i]
		if userID != nil && a.UserID != *userID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActivityRepo) List(ctx context.Context, userID *uuid.UUID, params *pagination.PaginationParams) ([]entity.Activity, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []entity.Activity
	for _, a := range f.activities {
		if userID != nil && a.UserID != *userID {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

// fakeAnalyticsRepo records sales as (time, supplier, amount, status)
// tuples and answers range queries over them, mirroring what the SQL
// aggregate does: only completed sales count.
type fakeAnalyticsRepo struct {
	entries []analyticsEntry
	err     error
	calls   int
}

type analyticsEntry struct {
	at         time.Time
	supplierID uuid.UUID
	amount     decimal.Decimal
	status     enum.SaleStatus
}

func (f *fakeAnalyticsRepo) record(at time.Time, supplierID uuid.UUID, amount string) {
	f.recordWithStatus(at, supplierID, amount, enum.SaleStatusCompleted)
}

func (f *fakeAnalyticsRepo) recordWithStatus(at time.Time, supplierID uuid.UUID, amount string, status enum.SaleStatus) {
	f.entries = append(f.entries, analyticsEntry{
		at:         at,
		supplierID: supplierID,
		amount:     decimal.RequireFromString(amount),
		status:     status,
	})
}

func (f *fakeAnalyticsRepo) SalesTotalsBetween(ctx context.Context, start, end time.Time, supplierID *uuid.UUID) (*repository.SalesTotals, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	totals := &repository.SalesTotals{Value: decimal.Zero}
	for _, e := range f.entries {
		if e.status != enum.SaleStatusCompleted {
			continue
		}
		if e.at.Before(start) || e.at.After(end) {
			continue
		}
		if supplierID != nil && e.supplierID != *supplierID {
			continue
		}
		totals.Orders++
		totals.Value = totals.Value.Add(e.amount)
	}
	return totals, nil
}
