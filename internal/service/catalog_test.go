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

func newCatalog(t *testing.T) (*service.CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	products := repo.NewProductRepo(db)
	return service.NewCatalogService(products, nil, nopLogger()), db
}

func TestListProductsByCategory(t *testing.T) {
	svc, db := newCatalog(t)
	seedCatalog(t, db)
	ctx := context.Background()

	got, err := svc.List(ctx, repo.ProductFilter{Category: domain.CategoryJerseys})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Power Dynamos FC Jersey", got[0].Name)
	assert.Equal(t, "Kabwe Warriors Away Jersey", got[1].Name)
}

func TestListProductsBySearch(t *testing.T) {
	svc, db := newCatalog(t)
	seedCatalog(t, db)
	ctx := context.Background()

	got, err := svc.List(ctx, repo.ProductFilter{Search: "scarf"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Zambian Scarf", got[0].Name)

	// 大小写不敏感，描述也参与匹配
	got, err = svc.List(ctx, repo.ProductFilter{Search: "EMBROIDERED"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "FAZ Green Baseball Cap", got[0].Name)
}

func TestListProductsFeatured(t *testing.T) {
	svc, db := newCatalog(t)
	seedCatalog(t, db)

	got, err := svc.List(context.Background(), repo.ProductFilter{Featured: true})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	in := service.ProductInput{
		Name: "Third Kit", Price: 400, Category: domain.CategoryJerseys,
		Sizes: []string{"M", "L"},
	}
	_, err := svc.Create(ctx, customerActor, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	p, err := svc.Create(ctx, adminActor, in)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestDeleteProduct(t *testing.T) {
	svc, db := newCatalog(t)
	seedCatalog(t, db)
	ctx := context.Background()

	// 非管理员删除：拒绝且目录不变
	err := svc.Delete(ctx, customerActor, "4")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	all, err := svc.List(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 6)

	// 管理员删除：只少那一件，其余保持原顺序
	require.NoError(t, svc.Delete(ctx, adminActor, "4"))
	all, err = svc.List(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	ids := make([]string, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "5", "6"}, ids)

	// 幂等：再删同一 id 不报错
	require.NoError(t, svc.Delete(ctx, adminActor, "4"))
}

func TestUpdateProductShallowMerge(t *testing.T) {
	svc, db := newCatalog(t)
	seedCatalog(t, db)
	ctx := context.Background()

	price := 500.0
	featured := false
	p, err := svc.Update(ctx, adminActor, "1", service.ProductPatch{
		Price:    &price,
		Featured: &featured,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.Price)
	assert.False(t, p.Featured)
	// 没给的字段原样保留
	assert.Equal(t, "Power Dynamos FC Jersey", p.Name)
	assert.Equal(t, 50, p.Stock)

	_, err = svc.Update(ctx, customerActor, "1", service.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Update(ctx, adminActor, "no-such-id", service.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	// uuid 主键的字典序与录入顺序无关，列表必须按插入序返回
	var created []string
	for _, name := range []string{"First Kit", "Second Kit", "Third Kit", "Fourth Kit"} {
		p, err := svc.Create(ctx, adminActor, service.ProductInput{
			Name: name, Price: 100, Category: domain.CategoryJerseys,
			Sizes: []string{"M"},
		})
		require.NoError(t, err)
		created = append(created, p.ID)
	}

	all, err := svc.List(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	got := make([]string, 0, len(all))
	for _, p := range all {
		got = append(got, p.ID)
	}
	assert.Equal(t, created, got)
}

func TestGetProduct(t *testing.T) {
	svc, db := newCatalog(t)
	seedCatalog(t, db)
	ctx := context.Background()

	p, err := svc.Get(ctx, "5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Match Ball - Official", p.Name)
	assert.Equal(t, domain.StringList{"Size 5"}, p.Sizes)

	p, err = svc.Get(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, p)
}

