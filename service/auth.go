package service

import (
	"Blog/config"
	"Blog/dao/cache"
	"Blog/models"
	"Blog/pkg/encrypt"
	"Blog/pkg/errs"
	"Blog/pkg/jwt"
	"Blog/store"
	"context"
	"errors"
	"strings"
	"time"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, opt *RegisterOpt) (*AuthResult, error)
	Login(ctx context.Context, opt *LoginOpt) (*AuthResult, error)
	IssueToken(user *models.User) (*AuthResult, error)
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type RegisterOpt struct {
	UserName string
	Password string
}

type LoginOpt struct {
	UserName string
	Password string
}

// AuthResult 登录/注册成功后返回给客户端的令牌和用户摘要
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// 用户不存在和密码错误共用同一错误，避免用户名枚举
var errInvalidCredentials = errs.Unauthenticated("Invalid username or password")

type AuthService struct {
	Store  store.Store
	Tokens cache.TokenStore
	Conf   *config.Config
}

func (s *AuthService) jwtOptions() jwt.Options {
	return jwt.Options{
		Secret:   []byte(s.Conf.Jwt.Secret),
		Issuer:   s.Conf.Jwt.Issuer,
		Audience: s.Conf.Jwt.Audience,
		Expire:   s.Conf.Jwt.Expire(),
	}
}

// Register 先校验字段再查重，邮箱由用户名生成
func (s *AuthService) Register(ctx context.Context, opt *RegisterOpt) (*AuthResult, error) {
	if err := validateUserName(opt.UserName); err != nil {
		return nil, err
	}
	if err := validatePassword(opt.Password); err != nil {
		return nil, err
	}

	exist, err := s.Store.UserExists(ctx, opt.UserName)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, errs.Conflict("Username already exists")
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if err != nil {
		return nil, errs.Internal(err.Error())
	}

	user, err := s.Store.CreateUser(ctx, opt.UserName, opt.UserName+"@test.com", hash)
	if err != nil {
		return nil, err
	}
	return s.IssueToken(user)
}

func (s *AuthService) Login(ctx context.Context, opt *LoginOpt) (*AuthResult, error) {
	ok, err := s.Store.ValidatePassword(ctx, opt.UserName, opt.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errInvalidCredentials
	}

	user, err := s.Store.GetUserByName(ctx, opt.UserName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	return s.IssueToken(user)
}

func (s *AuthService) IssueToken(user *models.User) (*AuthResult, error) {
	token, claims, err := jwt.GenerateToken(s.jwtOptions(), jwt.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		UserName: user.UserName,
	}, jwt.TypeAccess)
	if err != nil {
		return nil, errs.Internal(err.Error())
	}
	return &AuthResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
		User:      user,
	}, nil
}

// Authenticate 校验签名、签发方、受众、有效期以及黑名单
func (s *AuthService) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.Unauthenticated("Missing token")
	}
	claims, err := jwt.ParseToken(s.jwtOptions(), jwt.TypeAccess, token)
	if err != nil {
		return nil, errs.Unauthenticated("Invalid or expired token")
	}
	if claims.ID != "" {
		revoked, err := s.Tokens.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, errs.Internal(err.Error())
		}
		if revoked {
			return nil, errs.Unauthenticated("Token has been revoked")
		}
	}
	return claims, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.Store.GetUserByID(ctx, claims.UserID())
}

// Logout 无状态模式下为空操作，开启吊销时把 jti 加入黑名单直至令牌过期
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.Tokens.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return errs.Internal(err.Error())
	}
	return nil
}
