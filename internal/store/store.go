package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrActiveRound         = errors.New("round already active")
	ErrNoActiveRound       = errors.New("no active round")
	ErrBonusCooldown       = errors.New("bonus cooldown active")
)

// Store wraps DB access. The backend is selected by the DSN: postgres URLs
// use pgx, anything else is treated as a SQLite file path.
type Store struct {
	DB *sql.DB
}

func Open(dsn string) (*Store, error) {
	driver, dsn := driverFor(dsn)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// SQLite allows a single writer; funnel every connection through
		// one handle so write transactions serialize instead of failing
		// with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	return &Store{DB: db}, nil
}

func driverFor(dsn string) (string, string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", dsn
	}
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate"
	}
	return "sqlite", dsn
}

func (s *Store) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.DB.PingContext(ctx)
}

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
