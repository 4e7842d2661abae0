package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "GrowAGram"

var (
	jwtSecret         = []byte("growagram-dev-secret")
	JWTExpirationTime = time.Hour * 24
)

// Init 使用配置中的密钥和有效期
func Init(secret string, ttlHours int) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
	if ttlHours > 0 {
		JWTExpirationTime = time.Duration(ttlHours) * time.Hour
	}
}

// UserClaims Token 中携带的业务信息
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
