package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

type UserService struct {
	users *repo.UserRepo
	log   *zap.Logger
}

func NewUserService(users *repo.UserRepo, l *zap.Logger) *UserService {
	return &UserService{users: users, log: l}
}

type UserList struct {
	Total int64         `json:"total"`
	Items []domain.User `json:"items"`
}

func (s *UserService) List(ctx context.Context, actor domain.Actor, q string, offset, limit int) (*UserList, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	users, total, err := s.users.List(ctx, q, offset, limit)
	if err != nil {
		return nil, err
	}
	return &UserList{Total: total, Items: users}, nil
}

type UserPatch struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"` // 仅管理员可改
}

// Update：管理员可改任何人，普通用户只能改自己；角色字段只有管理员能动
func (s *UserService) Update(ctx context.Context, actor domain.Actor, id string, patch UserPatch) (*domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domain.ErrUnauthorized
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	if patch.Name != nil {
		u.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		u.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Password != nil && *patch.Password != "" {
		u.PasswordHash = utils.HashPassword(*patch.Password)
	}
	if patch.Role != nil && actor.IsAdmin() {
		u.Role = *patch.Role
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete 幂等；界面上不让管理员删自己，这里不拦（与店面契约一致）
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("id", id), zap.String("by", actor.ID))
	return nil
}
