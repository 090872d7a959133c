package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the marketplace tables if they don't exist yet. Runs at
// startup before the server accepts traffic.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS carbon_credits (
			id TEXT PRIMARY KEY,
			project_name TEXT NOT NULL,
			supplier TEXT NOT NULL,
			credit_type TEXT NOT NULL,
			vintage INTEGER NOT NULL,
			total_issued BIGINT NOT NULL,
			quantity_available BIGINT NOT NULL,
			price_per_ton NUMERIC(12,2) NOT NULL,
			location TEXT NOT NULL,
			verification_status TEXT NOT NULL,
			methodology TEXT NOT NULL,
			public_details JSONB NOT NULL DEFAULT '{}',
			private_details JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT stock_within_issuance
				CHECK (quantity_available >= 0 AND quantity_available <= total_issued)
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			credit_id TEXT NOT NULL REFERENCES carbon_credits (id),
			buyer_id TEXT NOT NULL,
			quantity BIGINT NOT NULL CHECK (quantity > 0),
			price_per_ton NUMERIC(12,2) NOT NULL,
			total_cost NUMERIC(14,2) NOT NULL,
			status TEXT NOT NULL,
			transaction_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_buyer ON transactions (buyer_id)`,
		`CREATE TABLE IF NOT EXISTS webhook_jobs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			url TEXT NOT NULL,
			payload JSONB NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			attempts INTEGER NOT NULL DEFAULT 0,
			next_run_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS idempotency_keys (
			key_id TEXT PRIMARY KEY,
			response_status INTEGER NOT NULL,
			response_body BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
