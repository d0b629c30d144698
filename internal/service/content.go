package service

import (
	"context"

	"go.uber.org/zap"

	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

// ContentService 给 news/matches/players 一套统一的
// 「公开读、管理员写」契约；T 选定具体内容类型。
type ContentService[T any, P interface {
	*T
	domain.Content
}] struct {
	repo *repo.ContentRepo[T, P]
	log  *zap.Logger
}

func NewContentService[T any, P interface {
	*T
	domain.Content
}](r *repo.ContentRepo[T, P], l *zap.Logger) *ContentService[T, P] {
	return &ContentService[T, P]{repo: r, log: l}
}

func (s *ContentService[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *ContentService[T, P]) Get(ctx context.Context, id string) (P, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContentService[T, P]) Create(ctx context.Context, actor domain.Actor, item P) (P, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if item.ContentID() == "" {
		item.SetContentID(utils.NewID())
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update 浅合并：patch 的零值字段不落库
func (s *ContentService[T, P]) Update(ctx context.Context, actor domain.Actor, id string, patch P) (P, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.repo.Patch(ctx, existing, patch); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ContentService[T, P]) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	return s.repo.Delete(ctx, id)
}
