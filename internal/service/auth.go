package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"zpl-fanshop/internal/core/auth"
	"zpl-fanshop/internal/domain"
	"zpl-fanshop/internal/repo"
	"zpl-fanshop/pkg/utils"
)

type AuthService struct {
	users *repo.UserRepo
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users *repo.UserRepo, jwter *auth.JWTer, l *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: l}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,max=64"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
}

// Session 是登录/注册的统一出参；User 的 json 形态不含密码散列
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	u := domain.User{
		ID:           utils.NewID(),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		// 并发注册撞唯一索引也归为 EmailTaken
		if isDupKey(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("uid", u.ID))
	return &Session{User: u, Token: tok}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &Session{User: *u, Token: tok}, nil
}

// Me 按 token 身份取当前用户；登出没有服务端状态，客户端丢弃 token 即可
func (s *AuthService) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if actor.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	u, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
