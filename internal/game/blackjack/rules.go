package blackjack

import (
	"clover-casino/internal/config"
	"clover-casino/internal/game"
)

type Rules struct {
	ShoeDecks         int
	ReshuffleFraction float64
	MaxHands          int
	SplitRankFamily   bool
	DoubleAfterSplit  bool
	SurrenderEnabled  bool
}

func RulesFromConfig(cfg config.BlackjackConfig) Rules {
	return Rules{
		ShoeDecks:         cfg.ShoeDecks,
		ReshuffleFraction: cfg.ReshuffleFraction,
		MaxHands:          cfg.MaxHands,
		SplitRankFamily:   cfg.SplitRankFamily,
		DoubleAfterSplit:  cfg.DoubleAfterSplit,
		SurrenderEnabled:  cfg.SurrenderEnabled,
	}
}

// DefaultRules are standard six-deck table rules.
func DefaultRules() Rules {
	return Rules{
		ShoeDecks:         6,
		ReshuffleFraction: 0.25,
		MaxHands:          4,
		DoubleAfterSplit:  true,
		SurrenderEnabled:  true,
	}
}

// validateAction checks an action against the current hand without mutating
// anything.
func validateAction(s *State, rules Rules, action ActionType) error {
	if s.Phase != PhaseInProgress {
		return game.ErrInvalidAction
	}
	h := s.CurrentHand()
	if h == nil {
		return game.ErrInvalidAction
	}
	switch action {
	case ActionHit, ActionStand:
		return nil
	case ActionDouble:
		if len(h.Cards) != 2 {
			return game.ErrInvalidAction
		}
		if h.FromSplit && !rules.DoubleAfterSplit {
			return game.ErrInvalidAction
		}
		return nil
	case ActionSplit:
		if len(h.Cards) != 2 {
			return game.ErrInvalidAction
		}
		if len(s.Hands) >= rules.MaxHands {
			return game.ErrInvalidAction
		}
		if !splittablePair(h.Cards[0], h.Cards[1], rules) {
			return game.ErrInvalidAction
		}
		return nil
	case ActionSurrender:
		if !rules.SurrenderEnabled {
			return game.ErrInvalidAction
		}
		// Only as the first decision on an untouched hand.
		if len(h.Cards) != 2 || h.FromSplit || h.Doubled {
			return game.ErrInvalidAction
		}
		return nil
	default:
		return game.ErrInvalidAction
	}
}

func splittablePair(a, b game.Card, rules Rules) bool {
	if a.Rank == b.Rank {
		return true
	}
	return rules.SplitRankFamily && a.TenFamily() && b.TenFamily()
}
