package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"zpl-fanshop/internal/core/auth"
	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/internal/seed"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库跟随连接生命周期，池里只能留一条连接
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.NewsPost{},
		&domain.Match{},
		&domain.Player{},
	))
	return db
}

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := repo.NewProductRepo(db)
	for _, p := range seed.Products() {
		require.NoError(t, products.Create(context.Background(), &p))
	}
}

var (
	adminActor    = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	customerActor = domain.Actor{ID: "cust-1", Role: domain.RoleCustomer}
)

func nopLogger() *zap.Logger { return zap.NewNop() }
