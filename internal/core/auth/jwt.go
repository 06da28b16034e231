package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 会话声明：登录时从用户行派生，之后服务端不再保存任何会话状态。
// 注销只是客户端清 cookie，未过期的 token 在自然过期前一直有效（设计取舍）。
type Claims struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Role     string `json:"role"` // "reader" or "creator"
	Category string `json:"category,omitempty"`
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration // 默认 24h
}

func (j *JWTer) Issue(uid, email, role, category string) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:      uid,
		Email:    email,
		Role:     role,
		Category: category,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse 全有或全无：签名、算法、签发者、过期任一不对都拒绝
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer))

	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}
