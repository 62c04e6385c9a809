// File: middleware/adminAuth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pitchside/utils"
)

// AdminAuthMiddleware guards the back-office routes. A request must carry a
// bearer token that both verifies as a JWT and is still present in the auth
// cache, so logout revokes access immediately.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		// The cached session must exist and belong to the token's subject.
		cachedID, ok := utils.CheckAdminToken(c.Request.Context(), utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if !ok || cachedID != adminID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session revoked or expired"})
			return
		}

		c.Set("adminID", adminID)
		c.Next()
	}
}
