package roulette

import (
	"context"

	"clover-casino/internal/game"
	"clover-casino/internal/ledger"
)

// Engine drives roulette rounds through the Ledger. A round accumulates
// wagers one at a time, each debited as it lands on the table, then a single
// spin settles all of them at once.
type Engine struct {
	Ledger *ledger.Ledger
}

func NewEngine(l *ledger.Ledger) *Engine {
	return &Engine{Ledger: l}
}

func validateWager(w Wager) error {
	if w.Amount <= 0 {
		return ledger.ErrInvalidWager
	}
	switch w.Kind {
	case KindStraight:
		if w.Value < 0 || w.Value > 36 {
			return ledger.ErrInvalidWager
		}
	case KindDozen:
		if w.Value < 1 || w.Value > 3 {
			return ledger.ErrInvalidWager
		}
	case KindRed, KindBlack, KindOdd, KindEven, KindLow, KindHigh:
	default:
		return ledger.ErrInvalidWager
	}
	return nil
}

// Begin opens a round with its first wager; the ledger debits the amount and
// enforces the table limits.
func (e *Engine) Begin(ctx context.Context, accountID int64, w Wager) (*State, error) {
	if err := validateWager(w); err != nil {
		return nil, err
	}
	s := &State{Wagers: []Wager{w}, Chip: w.Amount}
	blob, err := s.Marshal()
	if err != nil {
		return nil, err
	}
	if err := e.Ledger.BeginRound(ctx, accountID, Game, w.Amount, blob); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Engine) load(ctx context.Context, accountID int64) (*State, error) {
	r, err := e.Ledger.ActiveRound(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if r.Game != Game {
		return nil, game.ErrInvalidAction
	}
	return Unmarshal(r.State)
}

func (e *Engine) save(ctx context.Context, accountID int64, s *State) error {
	blob, err := s.Marshal()
	if err != nil {
		return err
	}
	return e.Ledger.UpdateState(ctx, accountID, blob)
}

// AddWager places one more chip on the table. The debit commits before the
// wager list grows, so a failed debit leaves the round untouched.
func (e *Engine) AddWager(ctx context.Context, accountID int64, w Wager) (*State, error) {
	s, err := e.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if s.Spun {
		return nil, game.ErrInvalidAction
	}
	if err := validateWager(w); err != nil {
		return nil, err
	}
	// Each chip obeys the same table limits the opening wager does.
	if w.Amount < e.Ledger.Economy.MinBet || w.Amount > e.Ledger.Economy.MaxBet {
		return nil, ledger.ErrInvalidWager
	}
	if err := e.Ledger.AdjustLockedBet(ctx, accountID, w.Amount); err != nil {
		return nil, err
	}
	s.Wagers = append(s.Wagers, w)
	s.Chip = w.Amount
	if err := e.save(ctx, accountID, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Spin draws the winning pocket and persists it without settling, so callers
// can show the number before payouts land.
func (e *Engine) Spin(ctx context.Context, accountID int64) (*State, error) {
	s, err := e.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if s.Spun || len(s.Wagers) == 0 {
		return nil, game.ErrInvalidAction
	}
	s.Number = game.RandomInt(37)
	s.Spun = true
	if err := e.save(ctx, accountID, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Result is the settlement of a spun round.
type Result struct {
	Number   int
	Color    Color
	Gross    int64
	PerWager []int64
	TotalBet int64
	Tag      string
}

// Resolve settles every wager against the drawn number and closes the round.
func (e *Engine) Resolve(ctx context.Context, accountID int64) (*State, *Result, error) {
	s, err := e.load(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if !s.Spun {
		return nil, nil, game.ErrInvalidAction
	}

	res := settle(s.Wagers, s.Number)
	if _, err := e.Ledger.ResolveRound(ctx, accountID, res.Tag, res.Gross); err != nil {
		return nil, nil, err
	}
	return s, &res, nil
}

// settle computes the gross payout of every wager against one drawn pocket.
func settle(wagers []Wager, number int) Result {
	res := Result{Number: number, Color: ColorOf(number)}
	for _, w := range wagers {
		p := payout(w, number)
		res.Gross += p
		res.PerWager = append(res.PerWager, p)
		res.TotalBet += w.Amount
	}
	if res.Gross > 0 {
		res.Tag = "win"
	} else {
		res.Tag = "loss"
	}
	return res
}

// payout returns the gross return of a single wager: stake included on a hit,
// zero on a miss. Zero never counts for color, parity, range, or dozen.
func payout(w Wager, n int) int64 {
	switch w.Kind {
	case KindStraight:
		if n == w.Value {
			return 36 * w.Amount
		}
	case KindRed:
		if ColorOf(n) == ColorRed {
			return 2 * w.Amount
		}
	case KindBlack:
		if ColorOf(n) == ColorBlack {
			return 2 * w.Amount
		}
	case KindOdd:
		if n > 0 && n%2 == 1 {
			return 2 * w.Amount
		}
	case KindEven:
		if n > 0 && n%2 == 0 {
			return 2 * w.Amount
		}
	case KindLow:
		if n >= 1 && n <= 18 {
			return 2 * w.Amount
		}
	case KindHigh:
		if n >= 19 && n <= 36 {
			return 2 * w.Amount
		}
	case KindDozen:
		if n != 0 && dozenOf(n) == w.Value {
			return 3 * w.Amount
		}
	}
	return 0
}
