package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApplicationService(t *testing.T) (*ApplicationService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewApplicationService(db, NewVisaTypeService(db)), mock
}

func applicationRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "visa_type_id", "status", "full_name", "email", "phone",
		"passport_number", "nationality", "travel_date", "documents", "notes",
		"created_at", "updated_at",
	})
}

func validInput() CreateApplicationInput {
	return CreateApplicationInput{
		VisaTypeID:     1,
		FullName:       "Ali Hassan",
		Email:          "ali@example.com",
		Phone:          "+966512345678",
		PassportNumber: "A1234567",
		Nationality:    "Egyptian",
	}
}

func TestApplicationService_Create(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()
	now := time.Now()
	input := validInput()

	mock.ExpectQuery(`SELECT .+ FROM visa_types WHERE id`).
		WithArgs(int64(1)).
		WillReturnRows(visaTypeRow(1, "تأشيرة سياحية", "Tourist Visa", 300, nil, true, now))

	rows := applicationRows().AddRow(
		int64(10), int64(5), int64(1), "pending",
		input.FullName, input.Email, input.Phone, input.PassportNumber, input.Nationality,
		(*time.Time)(nil), (*string)(nil), (*string)(nil), now, now,
	)
	mock.ExpectQuery(`INSERT INTO visa_applications`).
		WithArgs(int64(5), int64(1), input.FullName, input.Email, input.Phone,
			input.PassportNumber, input.Nationality, (*time.Time)(nil), (*string)(nil), (*string)(nil)).
		WillReturnRows(rows)

	app, err := svc.Create(ctx, 5, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), app.ID)
	assert.Equal(t, int64(5), app.UserID)
	assert.Equal(t, models.StatusPending, app.Status)
	assert.Equal(t, "Ali Hassan", app.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_Create_MissingFields(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()

	// No expectations: validation must fail before any query runs.
	_, err := svc.Create(ctx, 5, CreateApplicationInput{})

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"full_name", "email", "phone", "passport_number", "nationality", "visa_type_id",
	}, ve.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_Create_BlankFieldsRejected(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()

	input := validInput()
	input.FullName = "   "
	input.Phone = "\t"

	_, err := svc.Create(ctx, 5, input)

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"full_name", "phone"}, ve.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_Create_UnknownVisaType(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()
	input := validInput()
	input.VisaTypeID = 999

	mock.ExpectQuery(`SELECT .+ FROM visa_types WHERE id`).
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Create(ctx, 5, input)

	assert.ErrorIs(t, err, ErrVisaTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_Create_InactiveVisaType(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()
	now := time.Now()
	input := validInput()

	mock.ExpectQuery(`SELECT .+ FROM visa_types WHERE id`).
		WithArgs(int64(1)).
		WillReturnRows(visaTypeRow(1, "تأشيرة سياحية", "Tourist Visa", 300, nil, false, now))

	// A withdrawn catalog entry reads the same as a missing one.
	_, err := svc.Create(ctx, 5, input)

	assert.ErrorIs(t, err, ErrVisaTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_Create_WithDocumentsAndNotes(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()
	now := time.Now()
	travelDate := now.AddDate(0, 1, 0)

	input := validInput()
	input.TravelDate = &travelDate
	input.Documents = []string{"passport.pdf", "photo.jpg"}
	input.Notes = "urgent processing requested"

	mock.ExpectQuery(`SELECT .+ FROM visa_types WHERE id`).
		WithArgs(int64(1)).
		WillReturnRows(visaTypeRow(1, "تأشيرة سياحية", "Tourist Visa", 300, nil, true, now))

	documents := `["passport.pdf","photo.jpg"]`
	notes := "urgent processing requested"
	rows := applicationRows().AddRow(
		int64(11), int64(5), int64(1), "pending",
		input.FullName, input.Email, input.Phone, input.PassportNumber, input.Nationality,
		&travelDate, &documents, &notes, now, now,
	)
	mock.ExpectQuery(`INSERT INTO visa_applications`).
		WithArgs(int64(5), int64(1), input.FullName, input.Email, input.Phone,
			input.PassportNumber, input.Nationality, &travelDate, &documents, &notes).
		WillReturnRows(rows)

	app, err := svc.Create(ctx, 5, input)

	require.NoError(t, err)
	assert.Equal(t, []string{"passport.pdf", "photo.jpg"}, app.Documents)
	require.NotNil(t, app.Notes)
	assert.Equal(t, notes, *app.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_ListByUser(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()
	now := time.Now()

	rows := applicationRows().
		AddRow(int64(2), int64(5), int64(1), "approved",
			"Ali Hassan", "ali@example.com", "+966512345678", "A1234567", "Egyptian",
			(*time.Time)(nil), (*string)(nil), (*string)(nil), now, now).
		AddRow(int64(1), int64(5), int64(1), "pending",
			"Ali Hassan", "ali@example.com", "+966512345678", "A1234567", "Egyptian",
			(*time.Time)(nil), (*string)(nil), (*string)(nil), now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .+ FROM visa_applications`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	apps, err := svc.ListByUser(ctx, 5)

	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, models.StatusApproved, apps[0].Status)
	assert.Equal(t, models.StatusPending, apps[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_ListByUser_Empty(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM visa_applications`).
		WithArgs(int64(5)).
		WillReturnRows(applicationRows())

	apps, err := svc.ListByUser(ctx, 5)

	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_ListByUser_BadStatusRow(t *testing.T) {
	svc, mock := setupApplicationService(t)
	ctx := context.Background()
	now := time.Now()

	rows := applicationRows().AddRow(int64(1), int64(5), int64(1), "archived",
		"Ali Hassan", "ali@example.com", "+966512345678", "A1234567", "Egyptian",
		(*time.Time)(nil), (*string)(nil), (*string)(nil), now, now)

	mock.ExpectQuery(`SELECT .+ FROM visa_applications`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	_, err := svc.ListByUser(ctx, 5)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
