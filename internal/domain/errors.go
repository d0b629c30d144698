package domain

import "errors"

// 统一业务错误：facade 只返回这几类，transport 负责映射 code
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrBadStatus          = errors.New("unknown order status")
)
