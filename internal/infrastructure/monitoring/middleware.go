package monitoring

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records request count and latency. Requests are labelled by
// route pattern so path parameters do not explode label cardinality.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
