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

func newOrderService(t *testing.T) (*service.OrderService, *service.CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedCatalog(t, db)
	carts := service.NewCartService(repo.NewCartRepo(db), repo.NewProductRepo(db), nopLogger())
	orders := service.NewOrderService(db, repo.NewOrderRepo(db), repo.NewCartRepo(db), nopLogger())
	return orders, carts, db
}

func checkoutInput() service.CheckoutInput {
	return service.CheckoutInput{
		FullName:      "Mwamba Chileshe",
		Email:         "mwamba@example.com",
		Phone:         "+260971234567",
		Address:       "12 Independence Ave",
		City:          "Lusaka",
		Province:      "Lusaka",
		PostalCode:    "10101",
		PaymentMethod: "mobile-money",
	}
}

func TestCreateOrderSnapshotsCartAndClearsIt(t *testing.T) {
	orders, carts, _ := newOrderService(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, customerActor, "1", "L", 2)
	require.NoError(t, err)
	_, err = carts.Add(ctx, customerActor, "4", "One Size", 1)
	require.NoError(t, err)

	o, err := orders.Create(ctx, customerActor, checkoutInput())
	require.NoError(t, err)
	require.Len(t, o.Items, 2)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, 450.0*2+120.0, o.Subtotal)
	assert.Equal(t, service.ShippingFee, o.Shipping)
	assert.Equal(t, o.Subtotal+service.ShippingFee, o.Total)
	assert.Equal(t, "Power Dynamos FC Jersey", o.Items[0].Product.Name)

	// 下单后购物车立即清空
	cart, err := carts.Get(ctx, customerActor)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	orders, _, _ := newOrderService(t)

	_, err := orders.Create(context.Background(), customerActor, checkoutInput())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	orders, _, _ := newOrderService(t)

	_, err := orders.Create(context.Background(), domain.Actor{}, checkoutInput())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestOrderVisibility(t *testing.T) {
	orders, carts, _ := newOrderService(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, customerActor, "3", "M", 1)
	require.NoError(t, err)
	mine, err := orders.Create(ctx, customerActor, checkoutInput())
	require.NoError(t, err)

	other := domain.Actor{ID: "cust-2", Role: domain.RoleCustomer}
	_, err = carts.Add(ctx, other, "6", "", 1)
	require.NoError(t, err)
	theirs, err := orders.Create(ctx, other, checkoutInput())
	require.NoError(t, err)

	// 顾客只看到自己的
	got, err := orders.List(ctx, customerActor, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	// 即便显式传入别人的 userID 也被覆盖
	got, err = orders.List(ctx, customerActor, other.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)

	// 管理员看全部，也可按用户过滤
	got, err = orders.List(ctx, adminActor, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	got, err = orders.List(ctx, adminActor, other.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, theirs.ID, got[0].ID)

	// 按 ID 取：非本人表现为不存在
	_, err = orders.Get(ctx, other, mine.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	o, err := orders.Get(ctx, adminActor, mine.ID)
	require.NoError(t, err)
	assert.Len(t, o.Items, 1)
}

func TestUpdateStatus(t *testing.T) {
	orders, carts, _ := newOrderService(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, customerActor, "5", "Size 5", 1)
	require.NoError(t, err)
	o, err := orders.Create(ctx, customerActor, checkoutInput())
	require.NoError(t, err)

	// 同值更新（pending 改回 pending）也要成功，不得当作订单不存在
	got, err := orders.UpdateStatus(ctx, adminActor, o.ID, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	// 五个取值都接受，不限制迁移方向
	for _, st := range []string{
		domain.StatusProcessing,
		domain.StatusShipped,
		domain.StatusDelivered,
		domain.StatusPending,
		domain.StatusCancelled,
	} {
		got, err := orders.UpdateStatus(ctx, adminActor, o.ID, st)
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
	}

	_, err = orders.UpdateStatus(ctx, adminActor, o.ID, "refunded")
	assert.ErrorIs(t, err, domain.ErrBadStatus)

	_, err = orders.UpdateStatus(ctx, adminActor, "no-such-order", domain.StatusShipped)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = orders.UpdateStatus(ctx, customerActor, o.ID, domain.StatusShipped)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
