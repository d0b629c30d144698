package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zpl-fanshop/internal/domain"
)

// ContentRepo 覆盖 news/matches/players 三类内容表。
// P 必须是 *T 且带 ContentMeta（见 domain.Content）。
type ContentRepo[T any, P interface {
	*T
	domain.Content
}] struct {
	db *gorm.DB
}

func NewContentRepo[T any, P interface {
	*T
	domain.Content
}](db *gorm.DB) *ContentRepo[T, P] {
	return &ContentRepo[T, P]{db: db}
}

func (r *ContentRepo[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Order("created_at").Find(&out).Error
	return out, err
}

func (r *ContentRepo[T, P]) FindByID(ctx context.Context, id string) (P, error) {
	var item T
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return P(&item), nil
}

func (r *ContentRepo[T, P]) Create(ctx context.Context, item P) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Patch 只更新 patch 中的非零字段，同时把新值并进 existing
func (r *ContentRepo[T, P]) Patch(ctx context.Context, existing, patch P) error {
	return r.db.WithContext(ctx).Model(existing).Updates(patch).Error
}

func (r *ContentRepo[T, P]) Delete(ctx context.Context, id string) error {
	var zero T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&zero).Error
}
