package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
)

type VisaTypeService struct {
	db *database.DB
}

func NewVisaTypeService(db *database.DB) *VisaTypeService {
	return &VisaTypeService{db: db}
}

const visaTypeColumns = `id, name_ar, name_en, description_ar, description_en, price, processing_days, requirements, active, created_at, updated_at`

func scanVisaType(row pgx.Row) (*models.VisaType, error) {
	var vt models.VisaType
	var requirements *string
	err := row.Scan(
		&vt.ID, &vt.NameAr, &vt.NameEn, &vt.DescriptionAr, &vt.DescriptionEn,
		&vt.Price, &vt.ProcessingDays, &requirements, &vt.Active,
		&vt.CreatedAt, &vt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	vt.Requirements, err = decodeStringList(requirements)
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

// List returns the catalog offered to applicants: active entries only,
// in insertion order.
func (s *VisaTypeService) List(ctx context.Context) ([]models.VisaType, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+visaTypeColumns+` FROM visa_types
		WHERE active = TRUE
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list visa types: %w", err)
	}
	defer rows.Close()

	var types []models.VisaType
	for rows.Next() {
		vt, err := scanVisaType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *vt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

func (s *VisaTypeService) GetByID(ctx context.Context, id int64) (*models.VisaType, error) {
	vt, err := scanVisaType(s.db.Pool.QueryRow(ctx, `
		SELECT `+visaTypeColumns+` FROM visa_types WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVisaTypeNotFound
		}
		return nil, err
	}
	return vt, nil
}

// Upsert inserts or refreshes a catalog entry keyed on its English
// name. Used by the out-of-band seeding CLI; not exposed over HTTP.
func (s *VisaTypeService) Upsert(ctx context.Context, vt *models.VisaType) (*models.VisaType, error) {
	requirements, err := encodeStringList(vt.Requirements)
	if err != nil {
		return nil, err
	}

	created, err := scanVisaType(s.db.Pool.QueryRow(ctx, `
		INSERT INTO visa_types (name_ar, name_en, description_ar, description_en, price, processing_days, requirements, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name_en) DO UPDATE
		SET name_ar = EXCLUDED.name_ar,
			description_ar = EXCLUDED.description_ar,
			description_en = EXCLUDED.description_en,
			price = EXCLUDED.price,
			processing_days = EXCLUDED.processing_days,
			requirements = EXCLUDED.requirements,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING `+visaTypeColumns+`
	`, vt.NameAr, vt.NameEn, vt.DescriptionAr, vt.DescriptionEn,
		vt.Price, vt.ProcessingDays, requirements, vt.Active))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert visa type: %w", err)
	}
	return created, nil
}
