package middleware

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the caller's
// user id in the gin context under "user_id".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		userID, err := services.ParseJWT(token)
		if err != nil {
			utils.TrackError("auth", "invalid_token")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
