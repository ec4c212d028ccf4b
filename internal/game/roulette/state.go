package roulette

import "encoding/json"

// Game is the round tag stored with the ledger.
const Game = "roulette"

// WagerKind names a bet category on the table layout.
type WagerKind string

const (
	KindStraight WagerKind = "straight"
	KindRed      WagerKind = "red"
	KindBlack    WagerKind = "black"
	KindOdd      WagerKind = "odd"
	KindEven     WagerKind = "even"
	KindLow      WagerKind = "low"
	KindHigh     WagerKind = "high"
	KindDozen    WagerKind = "dozen"
)

// Wager is a single chip placement. Value carries the pocket number for
// straight bets and the dozen index (1-3) for dozen bets; other kinds
// ignore it.
type Wager struct {
	Kind   WagerKind `json:"kind"`
	Value  int       `json:"value,omitempty"`
	Amount int64     `json:"amount"`
}

// Chips are the table's chip denominations, in cycling order.
var Chips = []int64{10, 50, 100, 500}

// State is the round state persisted as the ledger's opaque blob.
type State struct {
	Wagers []Wager `json:"wagers"`
	Chip   int64   `json:"chip"`
	Spun   bool    `json:"spun,omitempty"`
	Number int     `json:"number"`
}

// TotalWagered sums every placed chip.
func (s *State) TotalWagered() int64 {
	var total int64
	for _, w := range s.Wagers {
		total += w.Amount
	}
	return total
}

// NextChip cycles the selected chip denomination and returns the new value.
func (s *State) NextChip() int64 {
	for i, c := range Chips {
		if c == s.Chip {
			s.Chip = Chips[(i+1)%len(Chips)]
			return s.Chip
		}
	}
	s.Chip = Chips[0]
	return s.Chip
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
