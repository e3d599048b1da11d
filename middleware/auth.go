package middleware

import (
	"Blog/pkg/context"
	"Blog/pkg/errs"
	"Blog/pkg/jwt"
	"Blog/pkg/response"
	ctx "context"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier 由 service.AuthService 实现
type TokenVerifier interface {
	Authenticate(c ctx.Context, token string) (*jwt.Claims, error)
}

// BearerToken 取 Authorization: Bearer <token>，格式不对返回空串
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			response.Error(c, errs.Unauthenticated("Missing Authorization header"))
			return
		}
		token := BearerToken(c)
		if token == "" {
			response.Error(c, errs.Unauthenticated("Authorization header must be Bearer <token>"))
			return
		}

		claims, err := verifier.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			return
		}
		context.SetClaims(c, claims)

		c.Next()
	}
}
