package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blogpress/internal/core/auth"
	resp "blogpress/internal/transport/http/response"
)

const TokenCookie = "token"

// AuthJWT 鉴权闸门：没 token、坏 token 都在这里短路，handler 不会被调用。
// requireRole 非空时在认证之上再叠一层角色校验。
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := TokenFromRequest(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid or expired token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		// 请求级身份上下文，handler 统一从这里取
		c.Set("claims", claims)
		c.Set("userId", claims.UID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("category", claims.Category)
		c.Next()
	}
}

// TokenFromRequest 优先 http-only cookie，兼容 Authorization Bearer（非浏览器客户端）
func TokenFromRequest(c *gin.Context) string {
	if tok, err := c.Cookie(TokenCookie); err == nil && tok != "" {
		return tok
	}
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimPrefix(ah, "Bearer ")
	}
	return ""
}
