package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topform_http_requests_total",
		Help: "Number of handled HTTP requests.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "topform_http_request_duration_seconds",
		Help:    "HTTP request duration.",
		Buckets: prometheus.DefBuckets,
	})
)

func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()

		c.Next()

		requestDuration.Observe(time.Since(begin).Seconds())
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		requestsTotal.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()
	}
}
