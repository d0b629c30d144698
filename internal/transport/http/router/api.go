package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
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

// NewAPIEngine 组装顾客端：注册/登录、商品目录、内容流、购物车、下单
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, cch *cache.Cache) *gin.Engine {
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

	api := r.Group("/api/v1")

	users := repo.NewUserRepo(db)
	products := repo.NewProductRepo(db)
	carts := repo.NewCartRepo(db)
	orders := repo.NewOrderRepo(db)

	authSvc := service.NewAuthService(users, jwter, l)
	catalog := service.NewCatalogService(products, cch, l)
	cartSvc := service.NewCartService(carts, products, l)
	orderSvc := service.NewOrderService(db, orders, carts, l)
	newsSvc := service.NewContentService(repo.NewContentRepo[domain.NewsPost, *domain.NewsPost](db), l)
	matchSvc := service.NewContentService(repo.NewContentRepo[domain.Match, *domain.Match](db), l)
	playerSvc := service.NewContentService(repo.NewContentRepo[domain.Player, *domain.Player](db), l)

	mountPublic(ez.New(api), authSvc, catalog, newsSvc, matchSvc, playerSvc)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	mountAuthed(ez.New(authed), authSvc, cartSvc, orderSvc)

	return r
}

func mountPublic(
	e ez.EZ,
	authSvc *service.AuthService,
	catalog *service.CatalogService,
	newsSvc *service.ContentService[domain.NewsPost, *domain.NewsPost],
	matchSvc *service.ContentService[domain.Match, *domain.Match],
	playerSvc *service.ContentService[domain.Player, *domain.Player],
) {
	ez.Register(e, ez.Action[service.RegisterInput, *service.Session]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.RegisterInput) (*service.Session, error) {
			return authSvc.Register(c, *in)
		},
	})

	type loginIn struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	ez.Register(e, ez.Action[loginIn, *service.Session]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (*service.Session, error) {
			return authSvc.Login(c, in.Email, in.Password)
		},
	})

	type productQ struct {
		Category string `form:"category"`
		Featured bool   `form:"featured"`
		Search   string `form:"search"`
	}
	ez.Register(e, ez.Action[productQ, []domain.Product]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *productQ) ([]domain.Product, error) {
			return catalog.List(c, repo.ProductFilter{
				Category: in.Category,
				Featured: in.Featured,
				Search:   in.Search,
			})
		},
	})

	ez.Register(e, ez.Action[struct{}, *domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Product, error) {
			p, err := catalog.Get(c, c.Param("id"))
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, ez.NotFound("product not found")
			}
			return p, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, []domain.NewsPost]{
		Method: http.MethodGet, Path: "/news", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.NewsPost, error) {
			return newsSvc.List(c)
		},
	})
	ez.Register(e, ez.Action[struct{}, []domain.Match]{
		Method: http.MethodGet, Path: "/matches", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Match, error) {
			return matchSvc.List(c)
		},
	})
	ez.Register(e, ez.Action[struct{}, []domain.Player]{
		Method: http.MethodGet, Path: "/players", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Player, error) {
			return playerSvc.List(c)
		},
	})
}

func mountAuthed(
	e ez.EZ,
	authSvc *service.AuthService,
	cartSvc *service.CartService,
	orderSvc *service.OrderService,
) {
	ez.Register(e, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet, Path: "/me", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			return authSvc.Me(c, ez.Actor(c))
		},
	})

	ez.Register(e, ez.Action[struct{}, []domain.CartItem]{
		Method: http.MethodGet, Path: "/cart", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.CartItem, error) {
			return cartSvc.Get(c, ez.Actor(c))
		},
	})

	type addIn struct {
		ProductID string `json:"productId" binding:"required"`
		Size      string `json:"size" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	ez.Register(e, ez.Action[addIn, []domain.CartItem]{
		Method: http.MethodPost, Path: "/cart", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *addIn) ([]domain.CartItem, error) {
			return cartSvc.Add(c, ez.Actor(c), in.ProductID, in.Size, in.Quantity)
		},
	})

	type qtyIn struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	ez.Register(e, ez.Action[qtyIn, []domain.CartItem]{
		Method: http.MethodPut, Path: "/cart/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *qtyIn) ([]domain.CartItem, error) {
			return cartSvc.UpdateQuantity(c, ez.Actor(c), c.Param("id"), in.Quantity)
		},
	})

	ez.Register(e, ez.Action[struct{}, []domain.CartItem]{
		Method: http.MethodDelete, Path: "/cart/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.CartItem, error) {
			return cartSvc.Remove(c, ez.Actor(c), c.Param("id"))
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete, Path: "/cart", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := cartSvc.Clear(c, ez.Actor(c)); err != nil {
				return nil, err
			}
			return gin.H{"cleared": true}, nil
		},
	})

	ez.Register(e, ez.Action[service.CheckoutInput, *domain.Order]{
		Method: http.MethodPost, Path: "/orders", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.CheckoutInput) (*domain.Order, error) {
			return orderSvc.Create(c, ez.Actor(c), *in)
		},
	})

	ez.Register(e, ez.Action[struct{}, []domain.Order]{
		Method: http.MethodGet, Path: "/orders", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Order, error) {
			return orderSvc.List(c, ez.Actor(c), "")
		},
	})

	ez.Register(e, ez.Action[struct{}, *domain.Order]{
		Method: http.MethodGet, Path: "/orders/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Order, error) {
			return orderSvc.Get(c, ez.Actor(c), c.Param("id"))
		},
	})
}
