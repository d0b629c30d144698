package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zpl-fanshop/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) WithTx(tx *gorm.DB) *OrderRepo { return &OrderRepo{db: tx} }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

// List 最新的在前；userID 为空表示全部（管理端）
func (r *OrderRepo) List(ctx context.Context, userID string) ([]domain.Order, error) {
	tx := r.db.WithContext(ctx).Preload("Items")
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	var out []domain.Order
	err := tx.Order("created_at DESC").Find(&out).Error
	return out, err
}

// UpdateStatus 不报告受影响行数：mysql 驱动对同值更新报 0 行，
// 存在性由调用方自行确认
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
