package twentyone

import (
	"context"
	"encoding/json"

	"clover-casino/internal/game"
	"clover-casino/internal/ledger"
)

// Game is the round tag stored with the ledger.
const Game = "twentyone"

// State is the round state persisted as the ledger's opaque blob. Twenty-one
// is the stripped-down table: single deck, hit or stand only, no naturals,
// no splits, every win pays even money.
type State struct {
	Deck   *game.Shoe `json:"deck"`
	Player game.Hand  `json:"player"`
	Dealer game.Hand  `json:"dealer"`
}

func (s *State) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func Unmarshal(blob []byte) (*State, error) {
	var s State
	if err := json.Unmarshal(blob, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Result is the settlement of a finished round.
type Result struct {
	Tag         string
	Gross       int64
	PlayerValue int
	DealerValue int
}

// Engine drives twenty-one rounds through the Ledger.
type Engine struct {
	Ledger *ledger.Ledger
}

func NewEngine(l *ledger.Ledger) *Engine {
	return &Engine{Ledger: l}
}

// Begin opens a round: debits the bet and deals two cards each.
func (e *Engine) Begin(ctx context.Context, accountID int64, bet int64) (*State, error) {
	deck := game.NewDeck()
	s := &State{Deck: deck}
	s.Player.Add(deck.Draw())
	s.Dealer.Add(deck.Draw())
	s.Player.Add(deck.Draw())
	s.Dealer.Add(deck.Draw())

	blob, err := s.Marshal()
	if err != nil {
		return nil, err
	}
	if err := e.Ledger.BeginRound(ctx, accountID, Game, bet, blob); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Engine) load(ctx context.Context, accountID int64) (*State, int64, error) {
	r, err := e.Ledger.ActiveRound(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	if r.Game != Game {
		return nil, 0, game.ErrInvalidAction
	}
	s, err := Unmarshal(r.State)
	if err != nil {
		return nil, 0, err
	}
	return s, r.Bet, nil
}

// Hit draws one card. A bust settles the round immediately as a loss; the
// returned Result is nil while the round is still open.
func (e *Engine) Hit(ctx context.Context, accountID int64) (*State, *Result, error) {
	s, bet, err := e.load(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	s.Player.Add(s.Deck.Draw())

	if s.Player.Value() > 21 {
		res := settle(s, bet)
		if _, err := e.Ledger.ResolveRound(ctx, accountID, res.Tag, res.Gross); err != nil {
			return nil, nil, err
		}
		return s, &res, nil
	}

	blob, err := s.Marshal()
	if err != nil {
		return nil, nil, err
	}
	if err := e.Ledger.UpdateState(ctx, accountID, blob); err != nil {
		return nil, nil, err
	}
	return s, nil, nil
}

// Stand plays the dealer out to 17 and settles.
func (e *Engine) Stand(ctx context.Context, accountID int64) (*State, *Result, error) {
	s, bet, err := e.load(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	for s.Dealer.Value() < 17 {
		s.Dealer.Add(s.Deck.Draw())
	}

	res := settle(s, bet)
	if _, err := e.Ledger.ResolveRound(ctx, accountID, res.Tag, res.Gross); err != nil {
		return nil, nil, err
	}
	return s, &res, nil
}

func settle(s *State, bet int64) Result {
	pv, dv := s.Player.Value(), s.Dealer.Value()
	res := Result{PlayerValue: pv, DealerValue: dv}
	switch {
	case pv > 21:
		res.Tag, res.Gross = "loss", 0
	case dv > 21 || pv > dv:
		res.Tag, res.Gross = "win", 2*bet
	case dv > pv:
		res.Tag, res.Gross = "loss", 0
	default:
		res.Tag, res.Gross = "push", bet
	}
	return res
}
