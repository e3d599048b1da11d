package types

import "time"

type RegisterRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// AuthResponse 注册/登录返回
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}
