package middleware

import (
	"strconv"
	"time"

	"github.com/stpnv0/BookingWebhook/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route template.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
