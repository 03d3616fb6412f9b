package middleware

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware handles basic HTTP metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		// Use the route template so path params don't explode the label set.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		utils.TrackHTTPRequest(method, path, c.Writer.Status(), time.Since(start).Seconds())
	}
}
