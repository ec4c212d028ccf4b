package blackjack

import (
	"context"

	"clover-casino/internal/game"
	"clover-casino/internal/ledger"
)

// Engine drives multi-hand blackjack rounds through the Ledger. The engine
// itself is stateless: every call loads the round blob, applies one step,
// and persists before returning, so a round survives restarts and can pause
// indefinitely between steps.
type Engine struct {
	Ledger *ledger.Ledger
	Rules  Rules
}

func NewEngine(l *ledger.Ledger, rules Rules) *Engine {
	return &Engine{Ledger: l, Rules: rules}
}

// Begin opens a round: debits the bet, deals two cards to the player and two
// to the dealer. A natural on either side skips player play entirely.
func (e *Engine) Begin(ctx context.Context, accountID int64, bet int64) (*State, error) {
	shoe := game.NewShoe(e.Rules.ShoeDecks, e.Rules.ReshuffleFraction)
	player := HandState{Bet: bet}
	s := &State{Shoe: shoe, Phase: PhaseInProgress}

	player.Cards = append(player.Cards, shoe.Draw())
	s.Dealer.Add(shoe.Draw())
	player.Cards = append(player.Cards, shoe.Draw())
	s.Dealer.Add(shoe.Draw())
	s.Hands = []HandState{player}

	if s.Hands[0].IsNatural() || s.Dealer.IsNatural() {
		s.Cursor = len(s.Hands)
		s.Phase = PhaseDealerReveal
	}

	blob, err := s.Marshal()
	if err != nil {
		return nil, err
	}
	if err := e.Ledger.BeginRound(ctx, accountID, Game, bet, blob); err != nil {
		return nil, err
	}
	return s, nil
}

// load fetches and decodes the account's active blackjack round.
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

// Apply executes one player action on the current hand and persists the
// result.
func (e *Engine) Apply(ctx context.Context, accountID int64, action ActionType) (*State, error) {
	s, err := e.load(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := validateAction(s, e.Rules, action); err != nil {
		return nil, err
	}
	h := s.CurrentHand()

	switch action {
	case ActionHit:
		h.Cards = append(h.Cards, s.Shoe.Draw())
		if h.IsBust() {
			s.advance()
		}
	case ActionStand:
		s.advance()
	case ActionDouble:
		// The extra debit commits first; only then is the hand mutated.
		if err := e.Ledger.AdjustLockedBet(ctx, accountID, h.Bet); err != nil {
			return nil, err
		}
		h.Bet *= 2
		h.Doubled = true
		h.Cards = append(h.Cards, s.Shoe.Draw())
		s.advance()
	case ActionSplit:
		if err := e.Ledger.AdjustLockedBet(ctx, accountID, h.Bet); err != nil {
			return nil, err
		}
		first := HandState{Cards: []game.Card{h.Cards[0], s.Shoe.Draw()}, Bet: h.Bet, FromSplit: true}
		second := HandState{Cards: []game.Card{h.Cards[1], s.Shoe.Draw()}, Bet: h.Bet, FromSplit: true}
		// Mid-sequence insertion: the split hand is replaced in place.
		hands := make([]HandState, 0, len(s.Hands)+1)
		hands = append(hands, s.Hands[:s.Cursor]...)
		hands = append(hands, first, second)
		hands = append(hands, s.Hands[s.Cursor+1:]...)
		s.Hands = hands
	case ActionSurrender:
		h.Surrendered = true
		s.advance()
	}

	if err := e.save(ctx, accountID, s); err != nil {
		return nil, err
	}
	return s, nil
}

// DealerStep advances dealer play by one observable step: first the hole
// card reveal, then one draw per call. Each step persists and closes its
// transaction before returning, so callers can pause between steps to render
// them. done reports that dealer play is finished and the round can resolve.
func (e *Engine) DealerStep(ctx context.Context, accountID int64) (s *State, done bool, err error) {
	s, err = e.load(ctx, accountID)
	if err != nil {
		return nil, false, err
	}

	switch s.Phase {
	case PhaseDealerReveal:
		s.Phase = PhaseDealerDraw
	case PhaseDealerDraw:
		if !dealerShouldDraw(s) {
			return s, true, nil
		}
		s.Dealer.Add(s.Shoe.Draw())
	default:
		return nil, false, game.ErrInvalidAction
	}

	if err := e.save(ctx, accountID, s); err != nil {
		return nil, false, err
	}
	return s, !dealerShouldDraw(s) && s.Phase == PhaseDealerDraw, nil
}

// dealerShouldDraw applies the stand-on-all-17s rule. The dealer only draws
// while some hand still needs a dealer total to settle against.
func dealerShouldDraw(s *State) bool {
	if s.Dealer.Value() >= 17 {
		return false
	}
	for _, h := range s.Hands {
		if !h.IsBust() && !h.Surrendered && !h.IsNatural() {
			return true
		}
	}
	return false
}

// Resolve settles every hand against the final dealer total, credits the
// gross payout, and closes the round.
func (e *Engine) Resolve(ctx context.Context, accountID int64) (*State, *Result, error) {
	s, err := e.load(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if s.Phase != PhaseDealerDraw || dealerShouldDraw(s) {
		return nil, nil, game.ErrInvalidAction
	}

	res := settle(s)
	if _, err := e.Ledger.ResolveRound(ctx, accountID, res.Tag, res.Gross); err != nil {
		return nil, nil, err
	}
	s.Phase = PhaseResolved
	return s, &res, nil
}
