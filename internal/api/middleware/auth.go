package middleware

import (
	"GrowAGram/internal/pkg/consts"
	"GrowAGram/internal/pkg/redis"
	"GrowAGram/internal/pkg/response"
	"GrowAGram/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// tokenRevoked 登出后签名进入黑名单
var tokenRevoked = func(ctx context.Context, signature string) (bool, error) {
	return redis.Exists(ctx, consts.TokenBlacklistKey+signature)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		revoked, err := tokenRevoked(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if revoked {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		setUser(c, claims, tokenString)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func setUser(c *gin.Context, claims *security.UserClaims, token string) {
	c.Set("user_id", claims.UserID)
	c.Set("token", token)
	newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
	c.Request = c.Request.WithContext(newCtx)
}
