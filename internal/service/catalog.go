package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"zpl-fanshop/internal/core/cache"
	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	products *repo.ProductRepo
	cache    *cache.Cache // 可为 nil（测试/seed 场景）
	log      *zap.Logger
}

func NewCatalogService(products *repo.ProductRepo, cch *cache.Cache, l *zap.Logger) *CatalogService {
	return &CatalogService{products: products, cache: cch, log: l}
}

func (s *CatalogService) List(ctx context.Context, f repo.ProductFilter) ([]domain.Product, error) {
	// 首页的 featured 列表是最热的读路径，单独走缓存
	if s.cache != nil && f == (repo.ProductFilter{Featured: true}) {
		b, err := s.cache.GetOrLoad(ctx, featuredKey, productCacheTTL,
			func(ctx context.Context) ([]byte, error) {
				ps, e := s.products.List(ctx, f)
				if e != nil {
					return nil, e
				}
				return json.Marshal(ps)
			})
		if err != nil {
			return nil, err
		}
		var out []domain.Product
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	return s.products.List(ctx, f)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache == nil {
		return s.products.FindByID(ctx, id)
	}
	return cache.GetOrLoadJSON[domain.Product](s.cache, ctx, productKey(id), productCacheTTL,
		func(ctx context.Context) (*domain.Product, error) {
			return s.products.FindByID(ctx, id)
		})
}

type ProductInput struct {
	Name        string   `json:"name" binding:"required,max=128"`
	Price       float64  `json:"price" binding:"min=0"`
	Category    string   `json:"category" binding:"required,max=32"`
	Description string   `json:"description" binding:"max=512"`
	Image       string   `json:"image" binding:"max=255"`
	Stock       int      `json:"stock" binding:"min=0"`
	Sizes       []string `json:"sizes" binding:"required,min=1"`
	Featured    bool     `json:"featured"`
}

// ProductPatch 浅合并：只动给到的字段
type ProductPatch struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Stock       *int      `json:"stock"`
	Sizes       *[]string `json:"sizes"`
	Featured    *bool     `json:"featured"`
}

func (s *CatalogService) Create(ctx context.Context, actor domain.Actor, in ProductInput) (*domain.Product, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	p := domain.Product{
		ID:          utils.NewID(),
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Stock:       in.Stock,
		Sizes:       domain.StringList(in.Sizes),
		Featured:    in.Featured,
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, featuredKey)
	}
	s.log.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

func (s *CatalogService) Update(ctx context.Context, actor domain.Actor, id string, patch ProductPatch) (*domain.Product, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		p.Sizes = domain.StringList(*patch.Sizes)
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return p, nil
}

// Delete 幂等：id 不存在时也算成功
func (s *CatalogService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, productKey(id), featuredKey)
	}
}

const featuredKey = "products:featured"

func productKey(id string) string { return "product:" + id }
