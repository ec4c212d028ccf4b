package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// BeginRound atomically debits the bet and creates the active round. On any
// precondition failure the transaction rolls back with no balance change.
func (s *Store) BeginRound(ctx context.Context, id int64, game string, bet int64, state []byte) error {
	if bet <= 0 {
		return errors.New("bet must be positive")
	}
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	row := tx.QueryRowContext(ctx, `SELECT 1 FROM rounds WHERE account_id = $1`, id)
	switch err := row.Scan(&exists); {
	case err == nil:
		return ErrActiveRound
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	if err := debitTx(ctx, tx, id, bet); err != nil {
		return err
	}

	// ON CONFLICT catches the race where two begins pass the SELECT above;
	// the loser rolls back its debit and gets the same rejection.
	now := toMillis(time.Now())
	res, err := tx.ExecContext(ctx, `
		INSERT INTO rounds (account_id, game, bet, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id) DO NOTHING
	`, id, game, bet, string(state), now, now)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrActiveRound
	}
	return tx.Commit()
}

// AdjustRoundBet debits delta more from the balance and adds it to the
// round's locked bet. Nothing is mutated when the balance is short or no
// round is active.
func (s *Store) AdjustRoundBet(ctx context.Context, id int64, delta int64) error {
	if delta <= 0 {
		return errors.New("delta must be positive")
	}
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE rounds SET bet = bet + $1, updated_at = $2 WHERE account_id = $3
	`, delta, toMillis(time.Now()), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoActiveRound
	}

	if err := debitTx(ctx, tx, id, delta); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateRoundState persists game progress without touching the balance.
func (s *Store) UpdateRoundState(ctx context.Context, id int64, state []byte) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE rounds SET state = $1, updated_at = $2 WHERE account_id = $3
	`, string(state), toMillis(time.Now()), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoActiveRound
	}
	return nil
}

func (s *Store) GetRound(ctx context.Context, id int64) (*Round, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT account_id, game, bet, state, created_at, updated_at
		FROM rounds WHERE account_id = $1
	`, id)
	var (
		r       Round
		state   string
		created int64
		updated int64
	)
	if err := row.Scan(&r.AccountID, &r.Game, &r.Bet, &state, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r.State = []byte(state)
	r.CreatedAt = fromMillis(created)
	r.UpdatedAt = fromMillis(updated)
	return &r, nil
}

// ResolveRound deletes the active round, credits the gross payout, and
// appends the immutable history row. The deleted round is the claim: a
// concurrent or repeated resolve finds no row and reports ErrNoActiveRound,
// so a payout can never be applied twice.
func (s *Store) ResolveRound(ctx context.Context, id int64, result string, payout int64) (*HistoryEntry, error) {
	if payout < 0 {
		return nil, errors.New("payout must not be negative")
	}
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		game string
		bet  int64
	)
	row := tx.QueryRowContext(ctx, `DELETE FROM rounds WHERE account_id = $1 RETURNING game, bet`, id)
	if err := row.Scan(&game, &bet); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveRound
		}
		return nil, err
	}

	if payout > 0 {
		if err := creditTx(ctx, tx, id, payout); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	entry := &HistoryEntry{
		ID:        NewID(),
		AccountID: id,
		Game:      game,
		Bet:       bet,
		Result:    result,
		Net:       payout - bet,
		CreatedAt: now.UTC(),
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (id, account_id, game, bet, result, net, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.AccountID, entry.Game, entry.Bet, entry.Result, entry.Net, toMillis(now)); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return entry, nil
}

// CancelRound deletes the active round, optionally refunding the locked bet.
func (s *Store) CancelRound(ctx context.Context, id int64, refund bool) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var bet int64
	row := tx.QueryRowContext(ctx, `DELETE FROM rounds WHERE account_id = $1 RETURNING bet`, id)
	if err := row.Scan(&bet); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoActiveRound
		}
		return err
	}

	if refund && bet > 0 {
		if err := creditTx(ctx, tx, id, bet); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// debitTx subtracts amount inside tx. The guard in the WHERE clause makes the
// debit atomic on both backends; zero rows means the balance was short.
func debitTx(ctx context.Context, tx *sql.Tx, id int64, amount int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance - $1, updated_at = $2
		WHERE id = $3 AND balance >= $4
	`, amount, toMillis(time.Now()), id, amount)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func creditTx(ctx context.Context, tx *sql.Tx, id int64, amount int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE accounts SET balance = balance + $1, updated_at = $2 WHERE id = $3
	`, amount, toMillis(time.Now()), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
