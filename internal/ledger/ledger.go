package ledger

import (
	"context"
	"errors"
	"time"

	"clover-casino/internal/config"
	"clover-casino/internal/store"

	"github.com/rs/zerolog/log"
)

// Ledger owns account balances and the at-most-one active round per account.
// Every mutating call maps to a single store transaction, so callers may
// retry after any error without risking a double debit or credit.
type Ledger struct {
	Store   *store.Store
	Economy config.EconomyConfig
}

func New(s *store.Store, economy config.EconomyConfig) *Ledger {
	return &Ledger{Store: s, Economy: economy}
}

// GetOrCreateAccount returns the account, creating it with the configured
// starting balance on first contact.
func (l *Ledger) GetOrCreateAccount(ctx context.Context, id int64, displayName string) (*store.Account, error) {
	if err := l.Store.EnsureAccount(ctx, id, displayName, l.Economy.StartingBalance); err != nil {
		return nil, err
	}
	return l.Store.GetAccount(ctx, id)
}

func (l *Ledger) Balance(ctx context.Context, id int64) (int64, error) {
	return l.Store.GetBalance(ctx, id)
}

// BeginRound validates the wager, debits it, and opens the round.
func (l *Ledger) BeginRound(ctx context.Context, id int64, game string, bet int64, state []byte) error {
	if bet < l.Economy.MinBet || bet > l.Economy.MaxBet {
		return ErrInvalidWager
	}
	err := l.Store.BeginRound(ctx, id, game, bet, state)
	switch {
	case errors.Is(err, store.ErrActiveRound):
		return ErrAlreadyActiveRound
	case errors.Is(err, store.ErrInsufficientBalance):
		return ErrInsufficientFunds
	case err != nil:
		return err
	}
	log.Debug().Int64("account", id).Str("game", game).Int64("bet", bet).Msg("round opened")
	return nil
}

// ActiveRound returns the open round, or ErrRoundNotFound.
func (l *Ledger) ActiveRound(ctx context.Context, id int64) (*store.Round, error) {
	r, err := l.Store.GetRound(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRoundNotFound
	}
	return r, err
}

// UpdateState persists game progress; the balance is never touched.
func (l *Ledger) UpdateState(ctx context.Context, id int64, state []byte) error {
	err := l.Store.UpdateRoundState(ctx, id, state)
	if errors.Is(err, store.ErrNoActiveRound) {
		return ErrRoundNotFound
	}
	return err
}

// AdjustLockedBet debits delta more and grows the round's locked bet.
func (l *Ledger) AdjustLockedBet(ctx context.Context, id int64, delta int64) error {
	if delta <= 0 {
		return ErrInvalidWager
	}
	err := l.Store.AdjustRoundBet(ctx, id, delta)
	switch {
	case errors.Is(err, store.ErrNoActiveRound):
		return ErrRoundNotFound
	case errors.Is(err, store.ErrInsufficientBalance):
		return ErrInsufficientFunds
	}
	return err
}

// ResolveRound credits the gross payout, appends the history record, and
// deletes the round. Resolving twice returns ErrRoundNotFound with no second
// credit.
func (l *Ledger) ResolveRound(ctx context.Context, id int64, result string, payout int64) (*store.HistoryEntry, error) {
	entry, err := l.Store.ResolveRound(ctx, id, result, payout)
	if errors.Is(err, store.ErrNoActiveRound) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("account", id).Str("game", entry.Game).Str("result", result).
		Int64("payout", payout).Int64("net", entry.Net).Msg("round resolved")
	return entry, nil
}

// CancelRound deletes the round; with refund the locked bet is credited back.
func (l *Ledger) CancelRound(ctx context.Context, id int64, refund bool) error {
	err := l.Store.CancelRound(ctx, id, refund)
	if errors.Is(err, store.ErrNoActiveRound) {
		return ErrRoundNotFound
	}
	return err
}

// History returns resolved rounds for the account, newest first.
func (l *Ledger) History(ctx context.Context, id int64, f store.HistoryFilter, limit int) ([]store.HistoryEntry, error) {
	return l.Store.ListHistory(ctx, id, f, limit)
}

// ClaimBonus credits the daily bonus when the cooldown has elapsed.
func (l *Ledger) ClaimBonus(ctx context.Context, id int64) (int64, error) {
	cooldown := time.Duration(l.Economy.DailyBonusCooldownHours) * time.Hour
	bal, err := l.Store.ClaimBonus(ctx, id, l.Economy.DailyBonusAmount, cooldown)
	if errors.Is(err, store.ErrBonusCooldown) {
		return 0, ErrBonusNotReady
	}
	return bal, err
}

// BonusCooldownRemaining reports how long until the next claim is allowed.
func (l *Ledger) BonusCooldownRemaining(ctx context.Context, id int64) (time.Duration, error) {
	a, err := l.Store.GetAccount(ctx, id)
	if err != nil {
		return 0, err
	}
	if a.LastBonusAt == nil {
		return 0, nil
	}
	cooldown := time.Duration(l.Economy.DailyBonusCooldownHours) * time.Hour
	remaining := cooldown - time.Since(*a.LastBonusAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
