package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

// ShippingFee 全国统一运费
const ShippingFee = 50.0

type OrderService struct {
	db     *gorm.DB
	orders *repo.OrderRepo
	carts  *repo.CartRepo
	log    *zap.Logger
}

func NewOrderService(db *gorm.DB, orders *repo.OrderRepo, carts *repo.CartRepo, l *zap.Logger) *OrderService {
	return &OrderService{db: db, orders: orders, carts: carts, log: l}
}

type CheckoutInput struct {
	FullName      string `json:"fullName" binding:"required,max=128"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=32"`
	Address       string `json:"address" binding:"required,max=255"`
	City          string `json:"city" binding:"required,max=64"`
	Province      string `json:"province" binding:"required,max=64"`
	PostalCode    string `json:"postalCode" binding:"omitempty,max=16"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=mobile-money cash bank"`
}

// Create 把当前购物车快照成订单。订单写入和清空购物车在同一个
// 事务里提交，二者要么都发生要么都不发生。
func (s *OrderService) Create(ctx context.Context, actor domain.Actor, in CheckoutInput) (*domain.Order, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}

	cart, err := s.carts.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(cart))
	var subtotal float64
	for _, it := range cart {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Product:   it.Product,
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
		subtotal += it.Product.Price * float64(it.Quantity)
	}

	order := domain.Order{
		ID:            utils.NewID(),
		UserID:        actor.ID,
		Items:         items,
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		Province:      in.Province,
		PostalCode:    in.PostalCode,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		Shipping:      ShippingFee,
		Total:         subtotal + ShippingFee,
		Status:        domain.StatusPending,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e := s.orders.WithTx(tx).Create(ctx, &order); e != nil {
			return e
		}
		return s.carts.WithTx(tx).ClearUser(ctx, actor.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("id", order.ID),
		zap.String("uid", actor.ID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total),
	)
	return &order, nil
}

// List：管理员可看全部（userID 可选过滤），顾客只看自己的；最新在前
func (s *OrderService) List(ctx context.Context, actor domain.Actor, userID string) ([]domain.Order, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		userID = actor.ID
	}
	return s.orders.List(ctx, userID)
}

// Get 对非本人非管理员表现为不存在
func (s *OrderService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Order, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || (!actor.IsAdmin() && o.UserID != actor.ID) {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// UpdateStatus 只校验取值，不校验迁移：delivered 改回 pending 也放行
func (s *OrderService) UpdateStatus(ctx context.Context, actor domain.Actor, id, status string) (*domain.Order, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if !domain.ValidStatus(status) {
		return nil, domain.ErrBadStatus
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}
