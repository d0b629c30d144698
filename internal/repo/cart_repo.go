package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zpl-fanshop/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

// WithTx 返回绑定到事务的副本，供下单时与 orders 同事务清空
func (r *CartRepo) WithTx(tx *gorm.DB) *CartRepo { return &CartRepo{db: tx} }

func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at").
		Find(&items).Error
	return items, err
}

func (r *CartRepo) FindItem(ctx context.Context, userID, itemID string) (*domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.WithContext(ctx).
		First(&it, "user_id = ? AND id = ?", userID, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &it, err
}

// FindMergeTarget 按合并键 (productID, size) 找已有条目
func (r *CartRepo) FindMergeTarget(ctx context.Context, userID, productID, size string) (*domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.WithContext(ctx).
		First(&it, "user_id = ? AND product_id = ? AND size = ?", userID, productID, size).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &it, err
}

func (r *CartRepo) Create(ctx context.Context, it *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *CartRepo) Save(ctx context.Context, it *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *CartRepo) Delete(ctx context.Context, userID, itemID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, itemID).
		Delete(&domain.CartItem{}).Error
}

func (r *CartRepo) ClearUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.CartItem{}).Error
}
