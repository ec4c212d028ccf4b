package blackjack

import (
	"encoding/json"

	"clover-casino/internal/game"
)

// Game is the round tag stored with the ledger.
const Game = "blackjack"

type Phase string

const (
	PhaseInProgress   Phase = "in_progress"
	PhaseDealerReveal Phase = "dealer_reveal"
	PhaseDealerDraw   Phase = "dealer_draw"
	PhaseResolved     Phase = "resolved"
)

type ActionType string

const (
	ActionHit       ActionType = "hit"
	ActionStand     ActionType = "stand"
	ActionDouble    ActionType = "double"
	ActionSplit     ActionType = "split"
	ActionSurrender ActionType = "surrender"
)

// HandState is one player hand with its locked bet and flags.
type HandState struct {
	Cards       []game.Card `json:"cards"`
	Bet         int64       `json:"bet"`
	Doubled     bool        `json:"doubled,omitempty"`
	Surrendered bool        `json:"surrendered,omitempty"`
	FromSplit   bool        `json:"from_split,omitempty"`
}

func (h HandState) hand() game.Hand {
	return game.Hand{Cards: h.Cards}
}

func (h HandState) Value() int { return h.hand().Value() }

func (h HandState) IsBust() bool { return h.hand().IsBust() }

// IsNatural reports a dealt two-card 21. A 21 assembled after a split is a
// plain 21: even money, and the dealer still plays against it.
func (h HandState) IsNatural() bool { return !h.FromSplit && h.hand().IsNatural() }

// State is the full round state persisted as the ledger's opaque blob.
type State struct {
	Shoe   *game.Shoe  `json:"shoe"`
	Hands  []HandState `json:"hands"`
	Cursor int         `json:"cursor"`
	Dealer game.Hand   `json:"dealer"`
	Phase  Phase       `json:"phase"`
}

// DealerVisible is the dealer view for rendering: only the upcard until the
// hole card is revealed.
func (s *State) DealerVisible() []game.Card {
	if s.Phase == PhaseInProgress && len(s.Dealer.Cards) > 0 {
		return s.Dealer.Cards[:1]
	}
	return s.Dealer.Cards
}

// CurrentHand returns the hand the cursor points at, or nil when player play
// is over.
func (s *State) CurrentHand() *HandState {
	if s.Cursor < 0 || s.Cursor >= len(s.Hands) {
		return nil
	}
	return &s.Hands[s.Cursor]
}

// advance moves the cursor one hand forward; once it passes the last hand
// the round moves to dealer play.
func (s *State) advance() {
	s.Cursor++
	if s.Cursor >= len(s.Hands) {
		s.Phase = PhaseDealerReveal
	}
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
