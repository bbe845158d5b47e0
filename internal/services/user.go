package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/oauth"
)

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = `id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var role string
	err := row.Scan(
		&user.ID, &user.OpenID, &user.Name, &user.Email, &user.LoginMethod,
		&role, &user.CreatedAt, &user.UpdatedAt, &user.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}

	user.Role, err = models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreateFromOAuth resolves a sign-in: an existing user (matched
// on the provider-qualified open id) gets profile fields refreshed and
// last_signed_in bumped; an unknown open id creates a new user with the
// default role.
func (s *UserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	openID := info.OpenID()

	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		UPDATE users
		SET name = $1, email = $2, login_method = $3, last_signed_in = NOW(), updated_at = NOW()
		WHERE open_id = $4
		RETURNING `+userColumns+`
	`, nullableString(info.Name), nullableString(info.Email), nullableString(info.Provider), openID))

	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user, err = scanUser(s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (open_id, name, email, login_method)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns+`
	`, openID, nullableString(info.Name), nullableString(info.Email), nullableString(info.Provider)))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByOpenID(ctx context.Context, openID string) (*models.User, error) {
	user, err := scanUser(s.db.Pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE open_id = $1
	`, openID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
