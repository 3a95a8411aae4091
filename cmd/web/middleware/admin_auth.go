package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/internal/logger"
	"inkwell/cmd/web/auth"
)

// AdminAuthMiddleware 는 요청 헤더의 세션 토큰을 검증하고 role 이 'admin'인지 확인한다.
// 세션은 서버에 저장되지 않으므로 토큰 검증이 곧 게이트다.
func AdminAuthMiddleware(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		role, err := sessions.Verify(token)
		if err != nil {
			logger.Log.Warnf("session token verify error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set("role", role)
		c.Next()
	}
}
