package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hong-layeang/quickstock-api/internal/domain/entity"
	"github.com/hong-layeang/quickstock-api/internal/domain/enum"
	"github.com/hong-layeang/quickstock-api/pkg/apperror"
)

func supplierActor() Actor {
	return Actor{ID: uuid.New(), Role: enum.RoleSupplier}
}

func adminActor() Actor {
	return Actor{ID: uuid.New(), Role: enum.RoleAdmin}
}

func TestCreateProduct_DerivesStatusFromStock(t *testing.T) {
	products := newFakeProductRepo()
	activity := &fakeActivityRepo{}
	svc := NewProductService(products, activity)
	actor := supplierActor()

	tests := []struct {
		stock int
		want  enum.ProductStatus
	}{
		{0, enum.ProductStatusOutOfStock},
		{5, enum.ProductStatusLowStock},
		{9, enum.ProductStatusLowStock},
		{10, enum.ProductStatusInStock},
		{500, enum.ProductStatusInStock},
	}

	for _, tt := range tests {
		product, err := svc.CreateProduct(context.Background(), actor, &CreateProductInput{
			Name:      "Widget",
			UnitPrice: decimal.NewFromFloat(9.99),
			Stock:     tt.stock,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, product.Status, "stock=%d", tt.stock)
		assert.Equal(t, actor.ID, product.SupplierID)
	}
}

func TestCreateProduct_GeneratesSKUWhenMissing(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, &fakeActivityRepo{})

	product, err := svc.CreateProduct(context.Background(), supplierActor(), &CreateProductInput{
		Name:      "Widget",
		UnitPrice: decimal.NewFromInt(1),
		Stock:     1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.SKU)
}

func TestCreateProduct_RejectsDuplicateSKU(t *testing.T) {
	products := newFakeProductRepo()
	products.add(&entity.Product{Name: "Existing", SKU: "SKU-TAKEN", SupplierID: uuid.New()})
	svc := NewProductService(products, &fakeActivityRepo{})

	_, err := svc.CreateProduct(context.Background(), supplierActor(), &CreateProductInput{
		Name:      "Widget",
		SKU:       "SKU-TAKEN",
		UnitPrice: decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateProduct_RejectsNegativeInputs(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeActivityRepo{})

	_, err := svc.CreateProduct(context.Background(), supplierActor(), &CreateProductInput{
		Name:      "Widget",
		UnitPrice: decimal.NewFromInt(-1),
	})
	assert.Error(t, err)

	_, err = svc.CreateProduct(context.Background(), supplierActor(), &CreateProductInput{
		Name:      "Widget",
		UnitPrice: decimal.NewFromInt(1),
		Stock:     -5,
	})
	assert.Error(t, err)
}

func TestCreateProduct_AdminAssignsSupplier(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products, &fakeActivityRepo{})
	supplierID := uuid.New()

	product, err := svc.CreateProduct(context.Background(), adminActor(), &CreateProductInput{
		Name:       "Widget",
		UnitPrice:  decimal.NewFromInt(1),
		SupplierID: &supplierID,
	})
	require.NoError(t, err)
	assert.Equal(t, supplierID, product.SupplierID)
}

func TestGetProduct_SupplierCannotReadOthers(t *testing.T) {
	products := newFakeProductRepo()
	other := products.add(&entity.Product{Name: "Theirs", SKU: "SKU-X", SupplierID: uuid.New()})
	svc := NewProductService(products, &fakeActivityRepo{})

	_, err := svc.GetProduct(context.Background(), supplierActor(), other.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	got, err := svc.GetProduct(context.Background(), adminActor(), other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeActivityRepo{})

	_, err := svc.GetProduct(context.Background(), adminActor(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateStock_RederivesStatus(t *testing.T) {
	products := newFakeProductRepo()
	actor := supplierActor()
	p := products.add(&entity.Product{
		Name:       "Widget",
		SKU:        "SKU-1",
		SupplierID: actor.ID,
		Stock:      50,
		Status:     enum.ProductStatusInStock,
	})
	svc := NewProductService(products, &fakeActivityRepo{})

	updated, err := svc.UpdateStock(context.Background(), actor, p.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Stock)
	assert.Equal(t, enum.ProductStatusLowStock, updated.Status)

	updated, err = svc.UpdateStock(context.Background(), actor, p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, enum.ProductStatusOutOfStock, updated.Status)

	_, err = svc.UpdateStock(context.Background(), actor, p.ID, -1)
	assert.Error(t, err)
}

func TestUpdateStock_DiscontinuedStaysDiscontinued(t *testing.T) {
	products := newFakeProductRepo()
	actor := supplierActor()
	p := products.add(&entity.Product{
		Name:       "Legacy",
		SKU:        "SKU-1",
		SupplierID: actor.ID,
		Stock:      0,
		Status:     enum.ProductStatusDiscontinued,
	})
	svc := NewProductService(products, &fakeActivityRepo{})

	updated, err := svc.UpdateStock(context.Background(), actor, p.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Stock)
	assert.Equal(t, enum.ProductStatusDiscontinued, updated.Status)
}

func TestUpdateProduct_DiscontinueAndReinstate(t *testing.T) {
	products := newFakeProductRepo()
	actor := supplierActor()
	p := products.add(&entity.Product{
		Name:       "Widget",
		SKU:        "SKU-1",
		SupplierID: actor.ID,
		Stock:      50,
		Status:     enum.ProductStatusInStock,
	})
	svc := NewProductService(products, &fakeActivityRepo{})

	discontinued := true
	updated, err := svc.UpdateProduct(context.Background(), actor, p.ID, &UpdateProductInput{Discontinued: &discontinued})
	require.NoError(t, err)
	assert.Equal(t, enum.ProductStatusDiscontinued, updated.Status)

	discontinued = false
	updated, err = svc.UpdateProduct(context.Background(), actor, p.ID, &UpdateProductInput{Discontinued: &discontinued})
	require.NoError(t, err)
	assert.Equal(t, enum.ProductStatusInStock, updated.Status, "status is re-derived from stock")
}

func TestDeleteProduct_RecordsActivity(t *testing.T) {
	products := newFakeProductRepo()
	activity := &fakeActivityRepo{}
	actor := supplierActor()
	p := products.add(&entity.Product{Name: "Widget", SKU: "SKU-1", SupplierID: actor.ID})
	svc := NewProductService(products, activity)

	require.NoError(t, svc.DeleteProduct(context.Background(), actor, p.ID))

	require.Len(t, activity.activities, 1)
	assert.Equal(t, "product.deleted", activity.activities[0].Action)
	assert.Equal(t, actor.ID, activity.activities[0].UserID)
}
