package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// EnsureAccount creates the account with the starting balance if it does not
// exist yet. Existing accounts are left untouched.
func (s *Store) EnsureAccount(ctx context.Context, id int64, displayName string, initial int64) error {
	now := toMillis(time.Now())
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO accounts (id, display_name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, id, displayName, initial, now, now)
	return err
}

func (s *Store) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, display_name, balance, last_bonus_at, created_at, updated_at
		FROM accounts WHERE id = $1
	`, id)
	var (
		a         Account
		lastBonus sql.NullInt64
		created   int64
		updated   int64
	)
	if err := row.Scan(&a.ID, &a.DisplayName, &a.Balance, &lastBonus, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if lastBonus.Valid {
		t := fromMillis(lastBonus.Int64)
		a.LastBonusAt = &t
	}
	a.CreatedAt = fromMillis(created)
	a.UpdatedAt = fromMillis(updated)
	return &a, nil
}

func (s *Store) GetBalance(ctx context.Context, id int64) (int64, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE id = $1`, id)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return bal, nil
}

// ClaimBonus credits the daily bonus if the cooldown has elapsed, atomically
// stamping the claim time. The relative credit and the cooldown guard share
// one statement, so a concurrent debit is never overwritten and a claim lands
// at most once per cooldown on any backend. Returns the new balance.
func (s *Store) ClaimBonus(ctx context.Context, id int64, amount int64, cooldown time.Duration) (int64, error) {
	now := time.Now()
	res, err := s.DB.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1, last_bonus_at = $2, updated_at = $3
		WHERE id = $4 AND (last_bonus_at IS NULL OR last_bonus_at <= $5)
	`, amount, toMillis(now), toMillis(now), id, toMillis(now.Add(-cooldown)))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// Missing account or a claim still inside the cooldown window.
		if _, err := s.GetBalance(ctx, id); err != nil {
			return 0, err
		}
		return 0, ErrBonusCooldown
	}
	return s.GetBalance(ctx, id)
}
