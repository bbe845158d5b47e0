package middleware

import (
	"time"

	"github.com/m1z23r/drift/pkg/drift"
)

// RequestMetrics is the slice of the metrics collector the request
// middleware records into.
type RequestMetrics interface {
	RecordRequest(method, path string, duration time.Duration)
}

func Metrics(m RequestMetrics) drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()

		c.Next()

		m.RecordRequest(c.Request.Method, c.Request.URL.Path, time.Since(start))
	}
}
