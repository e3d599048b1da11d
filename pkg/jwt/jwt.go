package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TypeAccess = "access"

var (
	ErrTokenType    = errors.New("invalid token type")
	ErrTokenSubject = errors.New("token has no subject")
)

// Claims 会话令牌载荷：sub=用户ID，jti=令牌唯一ID
type Claims struct {
	Email    string `json:"email"`
	UserName string `json:"unique_name"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// UserID 令牌主体
func (c *Claims) UserID() string {
	return c.Subject
}

type Identity struct {
	UserID   string
	Email    string
	UserName string
}

// Options 签发与校验共用的参数
type Options struct {
	Secret   []byte
	Issuer   string
	Audience string
	Expire   time.Duration
}

func GenerateToken(opt Options, id Identity, tokenType string) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Email:    id.Email,
		UserName: id.UserName,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ID:        uuid.NewString(),
			Issuer:    opt.Issuer,
			Audience:  jwt.ClaimStrings{opt.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opt.Expire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(opt.Secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func ParseToken(opt Options, expectedType string, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return opt.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(opt.Issuer),
		jwt.WithAudience(opt.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Type != expectedType {
		return nil, ErrTokenType
	}
	if claims.Subject == "" {
		return nil, ErrTokenSubject
	}
	return claims, nil
}
