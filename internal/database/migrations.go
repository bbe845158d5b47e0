package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		open_id VARCHAR(64) UNIQUE NOT NULL,
		name TEXT,
		email VARCHAR(320),
		login_method VARCHAR(64),
		role VARCHAR(20) NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		last_signed_in TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS visa_types (
		id BIGSERIAL PRIMARY KEY,
		name_ar VARCHAR(255) NOT NULL,
		name_en VARCHAR(255) NOT NULL,
		description_ar TEXT,
		description_en TEXT,
		price INTEGER NOT NULL,
		processing_days INTEGER NOT NULL,
		requirements TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE(name_en)
	)`,

	`CREATE TABLE IF NOT EXISTS visa_applications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		visa_type_id BIGINT NOT NULL REFERENCES visa_types(id),
		status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected', 'completed')),
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(320) NOT NULL,
		phone VARCHAR(20) NOT NULL,
		passport_number VARCHAR(50) NOT NULL,
		nationality VARCHAR(100) NOT NULL,
		travel_date TIMESTAMP WITH TIME ZONE,
		documents TEXT,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_visa_applications_user_id ON visa_applications(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_visa_applications_visa_type_id ON visa_applications(visa_type_id)`,
	`CREATE INDEX IF NOT EXISTS idx_visa_types_active ON visa_types(active)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
