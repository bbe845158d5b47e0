package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	jwtSvc := newTestJWTService()
	rl := NewRateLimiter(rate.Limit(1), 3)
	defer rl.Stop()

	app := drift.New()
	app.Use(Auth(jwtSvc, nil))
	app.Use(rl.Middleware())
	app.Post("/submit", func(c *drift.Context) {
		_ = c.JSON(http.StatusCreated, map[string]string{"status": "created"})
	})

	token := generateTestToken(t, jwtSvc, 5, models.RoleUser)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	jwtSvc := newTestJWTService()
	rl := NewRateLimiter(rate.Limit(0.001), 1)
	defer rl.Stop()

	app := drift.New()
	app.Use(Auth(jwtSvc, nil))
	app.Use(rl.Middleware())
	app.Post("/submit", func(c *drift.Context) {
		_ = c.JSON(http.StatusCreated, map[string]string{"status": "created"})
	})

	token := generateTestToken(t, jwtSvc, 5, models.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, 429, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many requests")
}

func TestRateLimiter_PerUserBuckets(t *testing.T) {
	jwtSvc := newTestJWTService()
	rl := NewRateLimiter(rate.Limit(0.001), 1)
	defer rl.Stop()

	app := drift.New()
	app.Use(Auth(jwtSvc, nil))
	app.Use(rl.Middleware())
	app.Post("/submit", func(c *drift.Context) {
		_ = c.JSON(http.StatusCreated, map[string]string{"status": "created"})
	})

	// One user exhausting their bucket leaves other users untouched.
	tokenA := generateTestToken(t, jwtSvc, 1, models.RoleUser)
	tokenB := generateTestToken(t, jwtSvc, 2, models.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer "+tokenA)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer "+tokenA)
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, 429, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer "+tokenB)
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRateLimiter_RequiresAuthenticatedUser(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	defer rl.Stop()

	app := drift.New()
	app.Use(rl.Middleware())
	app.Post("/submit", func(c *drift.Context) {
		_ = c.JSON(http.StatusCreated, map[string]string{"status": "created"})
	})

	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
