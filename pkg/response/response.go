package response

import (
	"Blog/pkg/errs"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应体，code=0 表示成功，否则为 HTTP 状态码
type Response struct {
	Code   int       `json:"code"`
	Reason errs.Code `json:"reason,omitempty"`
	Field  string    `json:"field,omitempty"`
	Msg    string    `json:"msg"`
	Data   any       `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: "success", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: 0, Msg: "success", Data: data})
}

// Message 只返回提示信息
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg})
}

var statusOf = map[errs.Code]int{
	errs.CodeValidation:       http.StatusBadRequest,
	errs.CodeInvalidOperation: http.StatusBadRequest,
	errs.CodeUnauthenticated:  http.StatusUnauthorized,
	errs.CodeForbidden:        http.StatusForbidden,
	errs.CodeNotFound:         http.StatusNotFound,
	errs.CodeConflict:         http.StatusConflict,
	errs.CodeInternal:         http.StatusInternalServerError,
}

func StatusOf(code errs.Code) int {
	if status, ok := statusOf[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error 按错误码写响应，内部错误不暴露细节
func Error(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	status := StatusOf(code)
	resp := Response{Code: status, Reason: code, Msg: "Internal server error"}

	var e *errs.Error
	if code != errs.CodeInternal && errors.As(err, &e) {
		resp.Field = e.Field
		resp.Msg = e.Msg
	}
	c.AbortWithStatusJSON(status, resp)
}

// Recovery 捕获 panic 并返回 500
func Recovery(onPanic func(c *gin.Context, r any)) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if onPanic != nil {
					onPanic(c, r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
					Code:   http.StatusInternalServerError,
					Reason: errs.CodeInternal,
					Msg:    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
