package middleware

import (
	"strings"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/services"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	// SessionCookie carries the access token for browser clients that
	// keep the session in a cookie instead of an Authorization header.
	SessionCookie = "visahub_session"
)

// TokenFromRequest extracts the presented access token: an
// Authorization bearer header wins, the session cookie is the fallback.
// Empty when no credentials are presented.
func TokenFromRequest(c *drift.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Request.Cookie(SessionCookie)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

// AuthMetrics is the slice of the metrics collector the auth gate
// records into. Nil disables recording.
type AuthMetrics interface {
	RecordAuthFailure()
}

func Auth(jwtService *services.JWTService, metrics AuthMetrics) drift.HandlerFunc {
	return func(c *drift.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			if metrics != nil {
				metrics.RecordAuthFailure()
			}
			c.Unauthorized("missing credentials")
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			if metrics != nil {
				metrics.RecordAuthFailure()
			}
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

func GetUserID(c *drift.Context) int64 {
	if id, ok := c.Get(UserIDKey); ok {
		if uid, ok := id.(int64); ok {
			return uid
		}
	}
	return 0
}

func GetUserRole(c *drift.Context) models.Role {
	if role, ok := c.Get(UserRoleKey); ok {
		if r, ok := role.(models.Role); ok {
			return r
		}
	}
	return models.RoleUser
}
