package store

import (
	"context"
	"fmt"
	"time"
)

type HistoryFilter struct {
	From *time.Time
	To   *time.Time
}

// ListHistory returns resolved-round records for one account, newest first.
func (s *Store) ListHistory(ctx context.Context, id int64, f HistoryFilter, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	where := "WHERE account_id = $1"
	args := []any{id}
	if f.From != nil {
		args = append(args, toMillis(*f.From))
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, toMillis(*f.To))
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit)
	q := `SELECT id, account_id, game, bet, result, net, created_at FROM history ` +
		where + fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []HistoryEntry{}
	for rows.Next() {
		var (
			e       HistoryEntry
			created int64
		)
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Game, &e.Bet, &e.Result, &e.Net, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = fromMillis(created)
		out = append(out, e)
	}
	return out, rows.Err()
}
