package handlers

import (
	"context"
	"time"

	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/oauth"
	"github.com/msalem/visahub-api/internal/services"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// VisaTypeServiceInterface defines the methods used by handlers from VisaTypeService
type VisaTypeServiceInterface interface {
	List(ctx context.Context) ([]models.VisaType, error)
	GetByID(ctx context.Context, id int64) (*models.VisaType, error)
}

// ApplicationServiceInterface defines the methods used by handlers from ApplicationService
type ApplicationServiceInterface interface {
	ListByUser(ctx context.Context, userID int64) ([]models.VisaApplication, error)
	Create(ctx context.Context, userID int64, input services.CreateApplicationInput) (*models.VisaApplication, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (int64, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID int64, role models.Role) (*services.TokenPair, error)
	ValidateAccessToken(token string) (*services.Claims, error)
	ValidateRefreshToken(token string) (int64, error)
	RefreshExpiry() time.Duration
}

// MetricsInterface defines the counters handlers record into
type MetricsInterface interface {
	RecordApplicationSubmitted()
	RecordValidationFailure()
}
