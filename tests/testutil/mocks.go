package testutil

import (
	"context"
	"time"

	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/oauth"
	"github.com/msalem/visahub-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.UserInfo) (*models.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockVisaTypeService mocks the VisaTypeService
type MockVisaTypeService struct {
	mock.Mock
}

func (m *MockVisaTypeService) List(ctx context.Context) ([]models.VisaType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VisaType), args.Error(1)
}

func (m *MockVisaTypeService) GetByID(ctx context.Context, id int64) (*models.VisaType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VisaType), args.Error(1)
}

// MockApplicationService mocks the ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) ListByUser(ctx context.Context, userID int64) ([]models.VisaApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VisaApplication), args.Error(1)
}

func (m *MockApplicationService) Create(ctx context.Context, userID int64, input services.CreateApplicationInput) (*models.VisaApplication, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VisaApplication), args.Error(1)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMetrics mocks the handler-facing metrics counters
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordApplicationSubmitted() {
	m.Called()
}

func (m *MockMetrics) RecordValidationFailure() {
	m.Called()
}
