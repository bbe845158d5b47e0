package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
)

type ApplicationService struct {
	db        *database.DB
	visaTypes *VisaTypeService
}

func NewApplicationService(db *database.DB, visaTypes *VisaTypeService) *ApplicationService {
	return &ApplicationService{db: db, visaTypes: visaTypes}
}

// CreateApplicationInput is the applicant-supplied part of a
// submission. The owning user is never part of it; it always comes from
// the authenticated caller.
type CreateApplicationInput struct {
	VisaTypeID     int64
	FullName       string
	Email          string
	Phone          string
	PassportNumber string
	Nationality    string
	TravelDate     *time.Time
	Documents      []string
	Notes          string
}

const applicationColumns = `id, user_id, visa_type_id, status, full_name, email, phone, passport_number, nationality, travel_date, documents, notes, created_at, updated_at`

func scanApplication(row pgx.Row) (*models.VisaApplication, error) {
	var app models.VisaApplication
	var status string
	var documents *string
	err := row.Scan(
		&app.ID, &app.UserID, &app.VisaTypeID, &status,
		&app.FullName, &app.Email, &app.Phone, &app.PassportNumber, &app.Nationality,
		&app.TravelDate, &documents, &app.Notes,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	app.Status, err = models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	app.Documents, err = decodeStringList(documents)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByUser returns the applications owned by userID, newest first.
// Rows belonging to any other user are never part of the result.
func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]models.VisaApplication, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+applicationColumns+` FROM visa_applications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []models.VisaApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}

// Create validates the submission, verifies the selected visa type is
// offered, and persists a single pending row owned by userID. On a
// validation failure nothing is written and the returned
// *ValidationError names every offending field.
func (s *ApplicationService) Create(ctx context.Context, userID int64, input CreateApplicationInput) (*models.VisaApplication, error) {
	var missing []string
	if strings.TrimSpace(input.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(input.PassportNumber) == "" {
		missing = append(missing, "passport_number")
	}
	if strings.TrimSpace(input.Nationality) == "" {
		missing = append(missing, "nationality")
	}
	if input.VisaTypeID <= 0 {
		missing = append(missing, "visa_type_id")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	visaType, err := s.visaTypes.GetByID(ctx, input.VisaTypeID)
	if err != nil {
		return nil, err
	}
	if !visaType.Active {
		return nil, ErrVisaTypeNotFound
	}

	documents, err := encodeStringList(input.Documents)
	if err != nil {
		return nil, err
	}

	app, err := scanApplication(s.db.Pool.QueryRow(ctx, `
		INSERT INTO visa_applications (user_id, visa_type_id, full_name, email, phone, passport_number, nationality, travel_date, documents, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+applicationColumns+`
	`, userID, input.VisaTypeID, input.FullName, input.Email, input.Phone,
		input.PassportNumber, input.Nationality, input.TravelDate, documents,
		nullableString(input.Notes)))
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}
