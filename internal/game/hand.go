package game

// Hand is an ordered sequence of cards scored by blackjack rules.
type Hand struct {
	Cards []Card `json:"cards"`
}

func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
}

// Value is the best blackjack total: aces count 11 while the hand stays at
// or under 21, 1 otherwise.
func (h Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h.Cards {
		total += c.BlackjackValue()
		if c.Rank == Ace {
			aces++
		}
	}
	for aces > 0 && total+10 <= 21 {
		total += 10
		aces--
	}
	return total
}

// IsNatural reports a two-card 21.
func (h Hand) IsNatural() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// IsSoft reports whether an ace is currently counted as 11.
func (h Hand) IsSoft() bool {
	base := 0
	hasAce := false
	for _, c := range h.Cards {
		base += c.BlackjackValue()
		if c.Rank == Ace {
			hasAce = true
		}
	}
	return hasAce && h.Value() != base
}

func (h Hand) String() string {
	out := ""
	for i, c := range h.Cards {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
