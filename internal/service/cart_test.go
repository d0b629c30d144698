package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/internal/service"
)

func newCartService(t *testing.T) (*service.CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedCatalog(t, db)
	svc := service.NewCartService(repo.NewCartRepo(db), repo.NewProductRepo(db), nopLogger())
	return svc, db
}

func TestAddToCartMergesSameProductAndSize(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	cart, err := svc.Add(ctx, customerActor, "1", "L", 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)

	cart, err = svc.Add(ctx, customerActor, "1", "L", 3)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)

	// 同商品另一尺码是独立条目
	cart, err = svc.Add(ctx, customerActor, "1", "M", 1)
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	cart, err := svc.Add(ctx, customerActor, "4", "One Size", 1)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "Zambian Scarf", cart[0].Product.Name)
	assert.Equal(t, 120.0, cart[0].Product.Price)

	// 后续改价/删除不回溯已加购的快照
	catalog := service.NewCatalogService(repo.NewProductRepo(db), nil, nopLogger())
	price := 999.0
	_, err = catalog.Update(ctx, adminActor, "4", service.ProductPatch{Price: &price})
	require.NoError(t, err)
	require.NoError(t, catalog.Delete(ctx, adminActor, "4"))

	cart, err = svc.Get(ctx, customerActor)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 120.0, cart[0].Product.Price)
	assert.Equal(t, "Zambian Scarf", cart[0].Product.Name)
}

func TestAddToCartErrors(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.Actor{}, "1", "L", 1)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = svc.Add(ctx, customerActor, "no-such-product", "L", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	svc, _ := newCartService(t)

	cart, err := svc.Add(context.Background(), customerActor, "3", "M", 0)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	cart, err := svc.Add(ctx, customerActor, "1", "L", 1)
	require.NoError(t, err)

	cart, err = svc.UpdateQuantity(ctx, customerActor, cart[0].ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart[0].Quantity)

	_, err = svc.UpdateQuantity(ctx, customerActor, "no-such-item", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	cart, err := svc.Add(ctx, customerActor, "1", "L", 1)
	require.NoError(t, err)
	itemID := cart[0].ID

	cart, err = svc.Remove(ctx, customerActor, itemID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	// 再删同一条不报错，返回当前购物车
	cart, err = svc.Remove(ctx, customerActor, itemID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, customerActor, "1", "L", 1)
	require.NoError(t, err)

	other := domain.Actor{ID: "cust-2", Role: domain.RoleCustomer}
	cart, err := svc.Get(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, cart)

	// 别人的条目对我不可见也不可改
	mine, err := svc.Get(ctx, customerActor)
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, other, mine[0].ID, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
