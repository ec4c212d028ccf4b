package store

import "context"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id BIGINT PRIMARY KEY,
		display_name TEXT NOT NULL DEFAULT '',
		balance BIGINT NOT NULL CHECK (balance >= 0),
		last_bonus_at BIGINT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rounds (
		account_id BIGINT PRIMARY KEY,
		game TEXT NOT NULL,
		bet BIGINT NOT NULL CHECK (bet >= 0),
		state TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		account_id BIGINT NOT NULL,
		game TEXT NOT NULL,
		bet BIGINT NOT NULL,
		result TEXT NOT NULL,
		net BIGINT NOT NULL,
		created_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_account_created ON history (account_id, created_at)`,
}

// Init applies the idempotent schema. Deployments normally run migrations out
// of band; tests and the demo driver call this directly.
func (s *Store) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
