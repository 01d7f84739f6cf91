package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"saheminvest/internal/metrics"
)

// Metrics records in-flight requests, request counts and latencies. Paths are
// labelled by route template so ids do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.RequestStarted()
		defer metrics.RequestFinished()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
