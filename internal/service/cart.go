package service

import (
	"context"

	"go.uber.org/zap"

	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

type CartService struct {
	carts    *repo.CartRepo
	products *repo.ProductRepo
	log      *zap.Logger
}

func NewCartService(carts *repo.CartRepo, products *repo.ProductRepo, l *zap.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: l}
}

func (s *CartService) Get(ctx context.Context, actor domain.Actor) ([]domain.CartItem, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.carts.ListByUser(ctx, actor.ID)
}

// Add 对同一 (productID, size) 合并数量，否则带商品快照追加新条目
func (s *CartService) Add(ctx context.Context, actor domain.Actor, productID, size string, qty int) ([]domain.CartItem, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if qty <= 0 {
		qty = 1
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := s.carts.FindMergeTarget(ctx, actor.ID, productID, size)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += qty
		if err := s.carts.Save(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		item := domain.CartItem{
			ID:        utils.NewID(),
			UserID:    actor.ID,
			ProductID: productID,
			Product:   p.Snapshot(),
			Size:      size,
			Quantity:  qty,
		}
		if err := s.carts.Create(ctx, &item); err != nil {
			return nil, err
		}
	}
	return s.carts.ListByUser(ctx, actor.ID)
}

// UpdateQuantity 直接写入，不校验正负（与店面契约一致，由调用方把关）
func (s *CartService) UpdateQuantity(ctx context.Context, actor domain.Actor, itemID string, qty int) ([]domain.CartItem, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	it, err := s.carts.FindItem(ctx, actor.ID, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	it.Quantity = qty
	if err := s.carts.Save(ctx, it); err != nil {
		return nil, err
	}
	return s.carts.ListByUser(ctx, actor.ID)
}

// Remove 对不存在的条目不报错，返回当前购物车
func (s *CartService) Remove(ctx context.Context, actor domain.Actor, itemID string) ([]domain.CartItem, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.carts.Delete(ctx, actor.ID, itemID); err != nil {
		return nil, err
	}
	return s.carts.ListByUser(ctx, actor.ID)
}

func (s *CartService) Clear(ctx context.Context, actor domain.Actor) error {
	if actor.Anonymous() {
		return domain.ErrUnauthenticated
	}
	return s.carts.ClearUser(ctx, actor.ID)
}
