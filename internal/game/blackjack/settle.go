package blackjack

// HandResult is the settlement of a single hand.
type HandResult struct {
	Tag    string
	Payout int64
}

// Result is the settlement of the whole round.
type Result struct {
	Tag         string
	Gross       int64
	PerHand     []HandResult
	DealerValue int
}

// settle computes every hand's payout against the final dealer total. Each
// hand settles independently; the round tag aggregates them.
func settle(s *State) Result {
	dealerValue := s.Dealer.Value()
	dealerBust := dealerValue > 21
	dealerNatural := s.Dealer.IsNatural()

	res := Result{DealerValue: dealerValue}
	var wins, losses, pushes, surrenders int

	for _, h := range s.Hands {
		hr := settleHand(h, dealerValue, dealerBust, dealerNatural)
		switch hr.Tag {
		case "win":
			wins++
		case "loss":
			losses++
		case "push":
			pushes++
		case "surrender":
			surrenders++
		}
		res.Gross += hr.Payout
		res.PerHand = append(res.PerHand, hr)
	}

	switch {
	case surrenders == len(s.Hands):
		res.Tag = "surrender"
	case wins > 0 && losses == 0:
		res.Tag = "win"
	case losses > 0 && wins == 0:
		res.Tag = "loss"
	case pushes == len(s.Hands):
		res.Tag = "push"
	default:
		res.Tag = "mixed"
	}
	return res
}

func settleHand(h HandState, dealerValue int, dealerBust, dealerNatural bool) HandResult {
	value := h.Value()
	switch {
	case h.Surrendered:
		return HandResult{Tag: "surrender", Payout: h.Bet / 2}
	case h.IsNatural() && !dealerNatural:
		return HandResult{Tag: "win", Payout: h.Bet + h.Bet*3/2}
	case h.IsNatural() && dealerNatural:
		return HandResult{Tag: "push", Payout: h.Bet}
	case value > 21:
		return HandResult{Tag: "loss", Payout: 0}
	case dealerBust || value > dealerValue:
		return HandResult{Tag: "win", Payout: 2 * h.Bet}
	case value < dealerValue:
		return HandResult{Tag: "loss", Payout: 0}
	default:
		return HandResult{Tag: "push", Payout: h.Bet}
	}
}
