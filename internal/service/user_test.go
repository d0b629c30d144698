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
	"zpl-fanshop/pkg/utils"
)

func newUserService(t *testing.T) (*service.UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	for _, u := range []domain.User{
		{ID: "admin-1", Email: "admin@zpl.zm", PasswordHash: utils.HashPassword("admin123"), Name: "Admin User", Role: domain.RoleAdmin},
		{ID: "cust-1", Email: "banda@example.com", PasswordHash: utils.HashPassword("secret1"), Name: "Chipo Banda", Role: domain.RoleCustomer},
		{ID: "cust-2", Email: "phiri@example.com", PasswordHash: utils.HashPassword("secret2"), Name: "Joseph Phiri", Role: domain.RoleCustomer},
	} {
		u := u
		require.NoError(t, users.Create(context.Background(), &u))
	}
	return service.NewUserService(users, nopLogger()), db
}

func TestListUsersAdminOnly(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, customerActor, "", 0, 20)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	got, err := svc.List(ctx, adminActor, "", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Total)
	assert.Len(t, got.Items, 3)

	// 搜索同时匹配邮箱和姓名，大小写不敏感
	got, err = svc.List(ctx, adminActor, "PHIRI", 0, 20)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "cust-2", got.Items[0].ID)
}

func TestUpdateUserSelfAndAdmin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	name := "Chipo B."
	u, err := svc.Update(ctx, customerActor, "cust-1", service.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Chipo B.", u.Name)

	// 改别人要管理员
	_, err = svc.Update(ctx, customerActor, "cust-2", service.UserPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// 角色字段普通用户改不动，管理员可以
	role := domain.RoleAdmin
	u, err = svc.Update(ctx, customerActor, "cust-1", service.UserPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	u, err = svc.Update(ctx, adminActor, "cust-1", service.UserPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	_, err = svc.Update(ctx, adminActor, "no-such-user", service.UserPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateUserPassword(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	pw := "newsecret"
	_, err := svc.Update(ctx, customerActor, "cust-1", service.UserPatch{Password: &pw})
	require.NoError(t, err)

	u, err := repo.NewUserRepo(db).FindByID(ctx, "cust-1")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword("newsecret", u.PasswordHash))
	assert.False(t, utils.CheckPassword("secret1", u.PasswordHash))
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, customerActor, "cust-2"), domain.ErrUnauthorized)

	require.NoError(t, svc.Delete(ctx, adminActor, "cust-2"))
	// 幂等：再删不报错
	require.NoError(t, svc.Delete(ctx, adminActor, "cust-2"))

	got, err := svc.List(ctx, adminActor, "", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Total)
}
