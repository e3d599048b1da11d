package middleware

import (
	"Blog/pkg/context"
	"Blog/pkg/snowflake"
	"strconv"

	"github.com/gin-gonic/gin"
)

const HeaderRequestID = "X-Request-ID"

// RequestID 沿用上游的请求ID，没有则生成
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > 64 {
			rid = strconv.FormatInt(snowflake.GenID(), 10)
		}
		c.Set(context.CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}
