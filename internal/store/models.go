package store

import "time"

type Account struct {
	ID          int64
	DisplayName string
	Balance     int64
	LastBonusAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Round struct {
	AccountID int64
	Game      string
	Bet       int64
	State     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HistoryEntry struct {
	ID        string
	AccountID int64
	Game      string
	Bet       int64
	Result    string
	Net       int64
	CreatedAt time.Time
}
