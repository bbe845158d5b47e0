package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/oauth"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserService(t *testing.T) (*UserService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewUserService(db), mock
}

func userRows(id int64, openID, name, email, provider, role string, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "open_id", "name", "email", "login_method", "role", "created_at", "updated_at", "last_signed_in",
	}).AddRow(id, openID, &name, &email, &provider, role, now, now, now)
}

func TestUserService_FindOrCreateFromOAuth_CreateNew(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()
	info := &oauth.UserInfo{
		Email:    "new@example.com",
		Name:     "New User",
		ID:       "provider-123",
		Provider: "github",
	}
	now := time.Now()

	// First query - no user with this open id
	mock.ExpectQuery(`UPDATE users`).
		WithArgs(&info.Name, &info.Email, &info.Provider, "github:provider-123").
		WillReturnError(pgx.ErrNoRows)

	// Insert new user
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("github:provider-123", &info.Name, &info.Email, &info.Provider).
		WillReturnRows(userRows(1, "github:provider-123", info.Name, info.Email, info.Provider, "user", now))

	user, err := svc.FindOrCreateFromOAuth(ctx, info)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "github:provider-123", user.OpenID)
	assert.Equal(t, models.RoleUser, user.Role)
	require.NotNil(t, user.Email)
	assert.Equal(t, info.Email, *user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_FindOrCreateFromOAuth_RefreshExisting(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()
	info := &oauth.UserInfo{
		Email:    "existing@example.com",
		Name:     "Existing User",
		ID:       "provider-456",
		Provider: "google",
	}
	now := time.Now()

	// Existing user refreshed in a single statement, no insert follows
	mock.ExpectQuery(`UPDATE users`).
		WithArgs(&info.Name, &info.Email, &info.Provider, "google:provider-456").
		WillReturnRows(userRows(7, "google:provider-456", info.Name, info.Email, info.Provider, "admin", now))

	user, err := svc.FindOrCreateFromOAuth(ctx, info)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetByID(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
		WithArgs(int64(42)).
		WillReturnRows(userRows(42, "github:abc", "Test User", "test@example.com", "github", "user", now))

	user, err := svc.GetByID(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "test@example.com", *user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByID(ctx, 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetByID_UnknownRole(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
		WithArgs(int64(42)).
		WillReturnRows(userRows(42, "github:abc", "Test User", "test@example.com", "github", "superuser", now))

	_, err := svc.GetByID(ctx, 42)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetByOpenID(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE open_id`).
		WithArgs("github:abc").
		WillReturnRows(userRows(5, "github:abc", "Test User", "test@example.com", "github", "user", now))

	user, err := svc.GetByOpenID(ctx, "github:abc")

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetByOpenID_NotFound(t *testing.T) {
	svc, mock := setupUserService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE open_id`).
		WithArgs("github:missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByOpenID(ctx, "github:missing")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
