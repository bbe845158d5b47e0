package main

import (
	"context"
	"fmt"
	"os"

	"github.com/msalem/visahub-api/internal/config"
	"github.com/msalem/visahub-api/internal/database"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/rs/zerolog"
)

// Role administration is out of band: no HTTP surface changes roles.

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-admin <email>")
		os.Exit(1)
	}

	email := os.Args[1]

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

	result, err := db.Pool.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = NOW()
		WHERE email = $2
	`, models.RoleAdmin.String(), email)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to update user")
	}

	if result.RowsAffected() == 0 {
		logger.Fatal().Str("email", email).Msg("no user found")
	}

	fmt.Printf("Successfully promoted %s to admin\n", email)
}
