package middleware

import (
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request after the handler chain has
// finished.
func RequestLogger(logger zerolog.Logger) drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()

		c.Next()

		event := logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Dur("duration", time.Since(start))

		if userID := GetUserID(c); userID != 0 {
			event = event.Int64("user_id", userID)
		}

		event.Msg("request")
	}
}
