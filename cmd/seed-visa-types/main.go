package main

import (
	"context"
	"fmt"
	"os"

	"github.com/msalem/visahub-api/internal/config"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/internal/services"
	"github.com/rs/zerolog"
)

func ptr(s string) *string { return &s }

// The catalog is administered out of band; this seeds the offering.
// Upserts key on the English name, so re-running is safe.
var catalog = []models.VisaType{
	{
		NameAr:         "تأشيرة سياحية",
		NameEn:         "Tourist Visa",
		DescriptionAr:  ptr("تأشيرة للزيارات السياحية قصيرة المدة"),
		DescriptionEn:  ptr("Visa for short-term tourist visits"),
		Price:          300,
		ProcessingDays: 3,
		Requirements:   []string{"passport copy", "personal photo", "return ticket"},
		Active:         true,
	},
	{
		NameAr:         "تأشيرة عمل",
		NameEn:         "Business Visa",
		DescriptionAr:  ptr("تأشيرة لرحلات العمل والاجتماعات"),
		DescriptionEn:  ptr("Visa for business trips and meetings"),
		Price:          500,
		ProcessingDays: 5,
		Requirements:   []string{"passport copy", "invitation letter", "company letter"},
		Active:         true,
	},
	{
		NameAr:         "تأشيرة زيارة",
		NameEn:         "Visit Visa",
		DescriptionAr:  ptr("تأشيرة لزيارة الأقارب والأصدقاء"),
		DescriptionEn:  ptr("Visa for visiting family and friends"),
		Price:          400,
		ProcessingDays: 4,
		Requirements:   []string{"passport copy", "host identification", "proof of relationship"},
		Active:         true,
	},
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	visaTypeService := services.NewVisaTypeService(db)

	for _, vt := range catalog {
		created, err := visaTypeService.Upsert(ctx, &vt)
		if err != nil {
			logger.Fatal().Err(err).Str("name", vt.NameEn).Msg("failed to seed visa type")
		}
		fmt.Printf("Seeded visa type %d: %s\n", created.ID, created.NameEn)
	}
}
