package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"accounts_backend/internal/auth"
	"accounts_backend/internal/logger"
	"accounts_backend/pkg/contextkeys"
)

// AuthMiddleware validates the bearer token and stores the user id in the
// gin context. Missing, malformed and expired tokens all produce a 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextkeys.UserIDContextKey, claims.UserID)
		c.Set("isStaff", claims.IsStaff)
		c.Set("isSuperuser", claims.IsSuperuser)
		c.Next()
	}
}

// GetUserID returns the authenticated user id from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(contextkeys.UserIDContextKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
