package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"zpl-fanshop/internal/core/auth"
	"zpl-fanshop/internal/core/cache"
	"zpl-fanshop/internal/core/server"
	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/internal/service"
	"zpl-fanshop/internal/transport/http/ez"
	mdw "zpl-fanshop/internal/transport/http/middleware"
)

// NewAdminEngine 组装管理端：商品/用户/订单/内容管理，整组要求 admin 角色
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, cch *cache.Cache) *gin.Engine {
	r := server.NewEngine(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))

	products := repo.NewProductRepo(db)
	usersRepo := repo.NewUserRepo(db)
	ordersRepo := repo.NewOrderRepo(db)
	carts := repo.NewCartRepo(db)

	catalog := service.NewCatalogService(products, cch, l)
	userSvc := service.NewUserService(usersRepo, l)
	orderSvc := service.NewOrderService(db, ordersRepo, carts, l)

	e := ez.New(admin)
	mountProductAdmin(e, catalog)
	mountUserAdmin(e, userSvc)
	mountOrderAdmin(e, orderSvc)

	mountContentAdmin(e, "/news", service.NewContentService(repo.NewContentRepo[domain.NewsPost, *domain.NewsPost](db), l))
	mountContentAdmin(e, "/matches", service.NewContentService(repo.NewContentRepo[domain.Match, *domain.Match](db), l))
	mountContentAdmin(e, "/players", service.NewContentService(repo.NewContentRepo[domain.Player, *domain.Player](db), l))

	return r
}

func mountProductAdmin(e ez.EZ, catalog *service.CatalogService) {
	type productQ struct {
		Category string `form:"category"`
		Featured bool   `form:"featured"`
		Search   string `form:"search"`
	}
	ez.Register(e, ez.Action[productQ, []domain.Product]{
		Method: http.MethodGet, Path: "/products", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *productQ) ([]domain.Product, error) {
			return catalog.List(c, repo.ProductFilter{
				Category: in.Category,
				Featured: in.Featured,
				Search:   in.Search,
			})
		},
	})

	ez.Register(e, ez.Action[service.ProductInput, *domain.Product]{
		Method: http.MethodPost, Path: "/products", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.ProductInput) (*domain.Product, error) {
			return catalog.Create(c, ez.Actor(c), *in)
		},
	})

	ez.Register(e, ez.Action[service.ProductPatch, *domain.Product]{
		Method: http.MethodPut, Path: "/products/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.ProductPatch) (*domain.Product, error) {
			return catalog.Update(c, ez.Actor(c), c.Param("id"), *in)
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/products/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := catalog.Delete(c, ez.Actor(c), c.Param("id")); err != nil {
				return nil, err
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})
}

func mountUserAdmin(e ez.EZ, userSvc *service.UserService) {
	type listQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // 按 email/name 模糊搜
	}
	ez.Register(e, ez.Action[listQ, *service.UserList]{
		Method: http.MethodGet, Path: "/users", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (*service.UserList, error) {
			return userSvc.List(c, ez.Actor(c), in.Q, in.Offset, in.Limit)
		},
	})

	ez.Register(e, ez.Action[service.UserPatch, *domain.User]{
		Method: http.MethodPut, Path: "/users/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.UserPatch) (*domain.User, error) {
			return userSvc.Update(c, ez.Actor(c), c.Param("id"), *in)
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/users/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := userSvc.Delete(c, ez.Actor(c), c.Param("id")); err != nil {
				return nil, err
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})
}

func mountOrderAdmin(e ez.EZ, orderSvc *service.OrderService) {
	type listQ struct {
		UserID string `form:"user_id"` // 可选：只看某个用户的订单
	}
	ez.Register(e, ez.Action[listQ, []domain.Order]{
		Method: http.MethodGet, Path: "/orders", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Order, error) {
			return orderSvc.List(c, ez.Actor(c), in.UserID)
		},
	})

	ez.Register(e, ez.Action[struct{}, *domain.Order]{
		Method: http.MethodGet, Path: "/orders/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Order, error) {
			return orderSvc.Get(c, ez.Actor(c), c.Param("id"))
		},
	})

	type statusIn struct {
		Status string `json:"status" binding:"required"`
	}
	ez.Register(e, ez.Action[statusIn, *domain.Order]{
		Method: http.MethodPut, Path: "/orders/:id/status", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *statusIn) (*domain.Order, error) {
			return orderSvc.UpdateStatus(c, ez.Actor(c), c.Param("id"), in.Status)
		},
	})
}

// mountContentAdmin 给一种内容类型挂全套管理接口
func mountContentAdmin[T any, P interface {
	*T
	domain.Content
}](e ez.EZ, path string, svc *service.ContentService[T, P]) {
	ez.Register(e, ez.Action[struct{}, []T]{
		Method: http.MethodGet, Path: path, Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]T, error) {
			return svc.List(c)
		},
	})

	ez.Register(e, ez.Action[T, P]{
		Method: http.MethodPost, Path: path, Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *T) (P, error) {
			return svc.Create(c, ez.Actor(c), P(in))
		},
	})

	ez.Register(e, ez.Action[T, P]{
		Method: http.MethodPut, Path: path + "/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *T) (P, error) {
			return svc.Update(c, ez.Actor(c), c.Param("id"), P(in))
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: path + "/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := svc.Delete(c, ez.Actor(c), c.Param("id")); err != nil {
				return nil, err
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})
}
