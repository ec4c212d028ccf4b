package game

type Suit int

type Rank int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	r := map[Rank]string{
		Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
		Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K",
	}[c.Rank]
	s := map[Suit]string{Spades: "s", Hearts: "h", Diamonds: "d", Clubs: "c"}[c.Suit]
	return r + s
}

// BlackjackValue is the base card value: faces count 10, the ace counts 1
// here and is promoted to 11 by hand scoring when it does not bust.
func (c Card) BlackjackValue() int {
	switch {
	case c.Rank >= Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// TenFamily reports whether the card belongs to the ten/face group, used by
// the rank-family split rule.
func (c Card) TenFamily() bool {
	return c.Rank >= Ten
}

func fullDecks(n int) []Card {
	cards := make([]Card, 0, n*52)
	for i := 0; i < n; i++ {
		for s := Spades; s <= Clubs; s++ {
			for r := Ace; r <= King; r++ {
				cards = append(cards, Card{Rank: r, Suit: s})
			}
		}
	}
	return cards
}
