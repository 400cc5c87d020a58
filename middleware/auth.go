package middleware

import (
	"net/http"
	"strings"

	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// PhotographerIDKey is the gin context key carrying the authenticated
// photographer's ID on protected routes.
const PhotographerIDKey = "photographerID"

// JWTAuthPhotographerMiddleware validates the bearer token, rejects revoked
// tokens and sets the photographer ID in the request context.
func JWTAuthPhotographerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			return
		}

		// Revoked tokens are tracked by hash in the auth cache.
		hash := utils.HashToken(tokenString)
		if n, err := utils.GetAuthCacheClient().Exists(c.Request.Context(), "revoked:"+hash).Result(); err == nil && n > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token has been revoked"})
			return
		}

		photographerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token subject"})
			return
		}

		c.Set(PhotographerIDKey, photographerID)
		c.Next()
	}
}
