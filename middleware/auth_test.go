package middleware

import (
	"Blog/pkg/context"
	"Blog/pkg/errs"
	"Blog/pkg/jwt"
	ctx "context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	token string
}

func (f fakeVerifier) Authenticate(_ ctx.Context, token string) (*jwt.Claims, error) {
	if token != f.token {
		return nil, errs.Unauthenticated("Invalid or expired token")
	}
	return &jwt.Claims{
		UserName:         "alice",
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: "user-1", ID: "jti-1"},
	}, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/private", Auth(fakeVerifier{token: "good"}), func(c *gin.Context) {
		c.String(http.StatusOK, context.GetUserID(c)+"/"+context.GetClaims(c).ID)
	})
	return r
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"no token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
		{"ok", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
	}
	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "user-1/jti-1", w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(HeaderRequestID, "upstream-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}
