package game

// Shoe is an ordered, shuffled card source. Draw removes from the end.
// Single decks reshuffle only once exhausted; multi-deck shoes reshuffle as
// soon as the remaining cards fall under the configured fraction of full
// capacity. The struct serializes with the round state so an interrupted
// round resumes with the same cards.
type Shoe struct {
	Cards             []Card  `json:"cards"`
	Decks             int     `json:"decks"`
	ReshuffleFraction float64 `json:"reshuffle_fraction"`
}

func NewShoe(decks int, reshuffleFraction float64) *Shoe {
	if decks < 1 {
		decks = 1
	}
	s := &Shoe{Decks: decks, ReshuffleFraction: reshuffleFraction}
	s.reset()
	return s
}

// NewDeck is a single 52-card deck that reshuffles on exhaustion.
func NewDeck() *Shoe {
	return NewShoe(1, 0)
}

func (s *Shoe) reset() {
	s.Cards = fullDecks(s.Decks)
	rnd := newRand()
	rnd.Shuffle(len(s.Cards), func(i, j int) {
		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	})
}

func (s *Shoe) needsReshuffle() bool {
	if len(s.Cards) == 0 {
		return true
	}
	if s.Decks > 1 && s.ReshuffleFraction > 0 {
		return float64(len(s.Cards)) < s.ReshuffleFraction*float64(s.Decks*52)
	}
	return false
}

// Draw removes and returns one card, reshuffling first when required.
func (s *Shoe) Draw() Card {
	if s.needsReshuffle() {
		s.reset()
	}
	c := s.Cards[len(s.Cards)-1]
	s.Cards = s.Cards[:len(s.Cards)-1]
	return c
}

// Remaining reports how many cards are left before the next reshuffle.
func (s *Shoe) Remaining() int {
	return len(s.Cards)
}
