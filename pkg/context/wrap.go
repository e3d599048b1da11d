package context

import (
	"Blog/pkg/errs"
	"Blog/pkg/jwt"
	"Blog/pkg/log"
	"Blog/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxClaims    = "claims"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		_ = c.Error(err)

		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}
		if errs.CodeOf(err) == errs.CodeInternal {
			log.L.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(CtxRequestID)),
				zap.Error(err),
			)
		}
		response.Error(c, err)
	}
}

// GetUserID 未登录返回空串
func GetUserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

func GetClaims(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}

func SetClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(CtxClaims, claims)
	c.Set(CtxUserID, claims.UserID())
}
