package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/msalem/visahub-api/internal/middleware"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/services"
	"github.com/msalem/visahub-api/pkg/dto"
	"github.com/msalem/visahub-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *services.JWTService {
	return services.NewJWTService("test-secret-key", 15*time.Minute, 24*time.Hour)
}

func generateTestToken(t *testing.T, jwtSvc *services.JWTService, userID int64, role models.Role) string {
	t.Helper()
	pair, err := jwtSvc.GenerateTokenPair(userID, role)
	require.NoError(t, err)
	return pair.AccessToken
}

func strptr(s string) *string { return &s }

func TestUserHandler_GetMe_Success(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(mockUserService)
	jwtSvc := newTestJWTService()

	user := &models.User{
		ID:           5,
		OpenID:       "github:provider-5",
		Name:         strptr("Test User"),
		Email:        strptr("test@example.com"),
		LoginMethod:  strptr("github"),
		Role:         models.RoleUser,
		LastSignedIn: time.Now(),
	}

	mockUserService.On("GetByID", mock.Anything, int64(5)).Return(user, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc, nil))
	app.Get("/users/me", handler.GetMe)

	token := generateTestToken(t, jwtSvc, 5, models.RoleUser)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.UserResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, int64(5), response.ID)
	require.NotNil(t, response.Email)
	assert.Equal(t, "test@example.com", *response.Email)
	assert.Equal(t, "user", response.Role)

	mockUserService.AssertExpectations(t)
}

func TestUserHandler_GetMe_NotAuthenticated(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(mockUserService)
	jwtSvc := newTestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc, nil))
	app.Get("/users/me", handler.GetMe)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockUserService.AssertNotCalled(t, "GetByID")
}

func TestUserHandler_GetMe_UserNotFound(t *testing.T) {
	mockUserService := new(testutil.MockUserService)
	handler := NewUserHandler(mockUserService)
	jwtSvc := newTestJWTService()

	mockUserService.On("GetByID", mock.Anything, int64(5)).Return(nil, errors.New("not found"))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc, nil))
	app.Get("/users/me", handler.GetMe)

	token := generateTestToken(t, jwtSvc, 5, models.RoleUser)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")

	mockUserService.AssertExpectations(t)
}
