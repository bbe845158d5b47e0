package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/oauth"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

func strptr(s string) *string { return &s }

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		OpenID:      fmt.Sprintf("github:provider-%d", f.counter),
		Name:        strptr(fmt.Sprintf("Test User %d", f.counter)),
		Email:       strptr(fmt.Sprintf("user%d@example.com", f.counter)),
		LoginMethod: strptr("github"),
		Role:        models.RoleUser,
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	var role string
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (open_id, name, email, login_method, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
	`, user.OpenID, user.Name, user.Email, user.LoginMethod, user.Role.String()).Scan(
		&user.ID, &user.OpenID, &user.Name, &user.Email, &user.LoginMethod,
		&role, &user.CreatedAt, &user.UpdatedAt, &user.LastSignedIn,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	user.Role, err = models.ParseRole(role)
	if err != nil {
		t.Fatalf("unexpected role %q: %v", role, err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = &email
	}
}

// WithOpenID sets the user's provider-qualified open id
func WithOpenID(openID string) UserOption {
	return func(u *models.User) {
		u.OpenID = openID
	}
}

// WithRole sets the user's role
func WithRole(role models.Role) UserOption {
	return func(u *models.User) {
		u.Role = role
	}
}

// CreateVisaType creates a test catalog entry
func (f *Fixtures) CreateVisaType(t *testing.T, opts ...VisaTypeOption) *models.VisaType {
	t.Helper()
	f.counter++

	vt := &models.VisaType{
		NameAr:         fmt.Sprintf("تأشيرة اختبار %d", f.counter),
		NameEn:         fmt.Sprintf("Test Visa %d", f.counter),
		Price:          300,
		ProcessingDays: 3,
		Requirements:   []string{"passport copy"},
		Active:         true,
	}

	for _, opt := range opts {
		opt(vt)
	}

	requirements, err := json.Marshal(vt.Requirements)
	if err != nil {
		t.Fatalf("failed to encode requirements: %v", err)
	}

	ctx := context.Background()
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO visa_types (name_ar, name_en, description_ar, description_en, price, processing_days, requirements, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, vt.NameAr, vt.NameEn, vt.DescriptionAr, vt.DescriptionEn,
		vt.Price, vt.ProcessingDays, string(requirements), vt.Active).Scan(
		&vt.ID, &vt.CreatedAt, &vt.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create visa type: %v", err)
	}

	return vt
}

// VisaTypeOption configures a test catalog entry
type VisaTypeOption func(*models.VisaType)

// WithNames sets the Arabic and English names
func WithNames(nameAr, nameEn string) VisaTypeOption {
	return func(vt *models.VisaType) {
		vt.NameAr = nameAr
		vt.NameEn = nameEn
	}
}

// WithPrice sets the price in SAR
func WithPrice(price int) VisaTypeOption {
	return func(vt *models.VisaType) {
		vt.Price = price
	}
}

// Inactive marks the entry as withdrawn from the catalog
func Inactive() VisaTypeOption {
	return func(vt *models.VisaType) {
		vt.Active = false
	}
}

// CreateApplication creates a test application owned by the given user
func (f *Fixtures) CreateApplication(t *testing.T, user *models.User, visaType *models.VisaType, opts ...ApplicationOption) *models.VisaApplication {
	t.Helper()
	f.counter++

	app := &models.VisaApplication{
		UserID:         user.ID,
		VisaTypeID:     visaType.ID,
		Status:         models.StatusPending,
		FullName:       fmt.Sprintf("Applicant %d", f.counter),
		Email:          fmt.Sprintf("applicant%d@example.com", f.counter),
		Phone:          "+966500000000",
		PassportNumber: fmt.Sprintf("P%07d", f.counter),
		Nationality:    "Saudi",
		Documents:      []string{},
	}

	for _, opt := range opts {
		opt(app)
	}

	documents, err := json.Marshal(app.Documents)
	if err != nil {
		t.Fatalf("failed to encode documents: %v", err)
	}

	ctx := context.Background()
	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO visa_applications (user_id, visa_type_id, status, full_name, email, phone, passport_number, nationality, travel_date, documents, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, app.UserID, app.VisaTypeID, app.Status.String(), app.FullName, app.Email,
		app.Phone, app.PassportNumber, app.Nationality, app.TravelDate,
		string(documents), app.Notes).Scan(
		&app.ID, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	return app
}

// ApplicationOption configures a test application
type ApplicationOption func(*models.VisaApplication)

// WithStatus sets the application's processing status
func WithStatus(status models.Status) ApplicationOption {
	return func(a *models.VisaApplication) {
		a.Status = status
	}
}

// WithFullName sets the applicant's name snapshot
func WithFullName(name string) ApplicationOption {
	return func(a *models.VisaApplication) {
		a.FullName = name
	}
}

// WithTravelDate sets the intended travel date
func WithTravelDate(d time.Time) ApplicationOption {
	return func(a *models.VisaApplication) {
		a.TravelDate = &d
	}
}

// CreateRefreshToken creates a test refresh token
func (f *Fixtures) CreateRefreshToken(t *testing.T, userID int64, tokenHash string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, userID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
}

// OAuthUserInfo creates test OAuth user info
func OAuthUserInfo(email, name, provider, id string) *oauth.UserInfo {
	return &oauth.UserInfo{
		Email:    email,
		Name:     name,
		ID:       id,
		Provider: provider,
	}
}
