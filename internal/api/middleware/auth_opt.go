package middleware

import (
	"GrowAGram/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint64(0))
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}
		if claims, err := security.ValidateToken(token); err == nil {
			setUser(c, claims, token)
		}
		c.Next()
	}
}
