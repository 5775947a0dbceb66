package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/api/utils"
)

const userIDKey = "userID"

// RequireAuth verifies the bearer token and stores the authenticated user id
// in the gin context for downstream handlers.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header must be a bearer token"})
			return
		}

		userID, err := utils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// CurrentUserID returns the user id placed in the context by RequireAuth.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(userIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
