package seed

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

const (
	AdminEmail    = "admin@zpl.zm"
	AdminPassword = "admin123"
)

func Admin() domain.User {
	return domain.User{
		ID:           "admin-1",
		Email:        AdminEmail,
		PasswordHash: utils.HashPassword(AdminPassword),
		Name:         "Admin User",
		Role:         domain.RoleAdmin,
	}
}

// Products 是演示用商品目录：两件球衣、训练鞋、围巾、比赛用球、棒球帽
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Power Dynamos FC Jersey",
			Price:       450,
			Category:    domain.CategoryJerseys,
			Description: "Official Power Dynamos FC home jersey with pride colors",
			Image:       "/football/shop/power_dynamos.jpeg",
			Stock:       50,
			Sizes:       domain.StringList{"S", "M", "L", "XL", "XXL"},
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Kabwe Warriors Away Jersey",
			Price:       450,
			Category:    domain.CategoryJerseys,
			Description: "Official away jersey in blue and black",
			Image:       "/football/shop/kabwe_warriors_away.jpg",
			Stock:       45,
			Sizes:       domain.StringList{"S", "M", "L", "XL", "XXL"},
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Soccer boots",
			Price:       180,
			Category:    domain.CategoryTraining,
			Description: "Professional training boots",
			Image:       "/football/shop/boots.jpeg",
			Stock:       100,
			Sizes:       domain.StringList{"S", "M", "L", "XL"},
			Featured:    false,
		},
		{
			ID:          "4",
			Name:        "Zambian Scarf",
			Price:       120,
			Category:    domain.CategoryAccessories,
			Description: "Show your support with official ZPL scarf",
			Image:       "/football/shop/scarf.jpeg",
			Stock:       200,
			Sizes:       domain.StringList{"One Size"},
			Featured:    false,
		},
		{
			ID:          "5",
			Name:        "Match Ball - Official",
			Price:       350,
			Category:    domain.CategoryEquipment,
			Description: "Official Zambian themed match ball",
			Image:       "/football/shop/ball.jpg",
			Stock:       30,
			Sizes:       domain.StringList{"Size 5"},
			Featured:    true,
		},
		{
			ID:          "6",
			Name:        "FAZ Green Baseball Cap",
			Price:       80,
			Category:    domain.CategoryAccessories,
			Description: "Embroidered FAZ logo cap",
			Image:       "/football/shop/faz_hat.jpeg",
			Stock:       150,
			Sizes:       domain.StringList{"One Size"},
			Featured:    false,
		},
	}
}

// Run 幂等：只在对应表为空时灌入，重复执行无副作用
func Run(ctx context.Context, db *gorm.DB, l *zap.Logger) error {
	users := repo.NewUserRepo(db)
	products := repo.NewProductRepo(db)

	n, err := users.CountAll(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		admin := Admin()
		if err := users.Create(ctx, &admin); err != nil {
			return err
		}
		l.Info("seeded admin account", zap.String("email", admin.Email))
	}

	n, err = products.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, p := range Products() {
			if err := products.Create(ctx, &p); err != nil {
				return err
			}
		}
		l.Info("seeded product catalog", zap.Int("count", len(Products())))
	}
	return nil
}
