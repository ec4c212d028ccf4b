package blackjack

import (
	"testing"

	"clover-casino/internal/game"
)

func hand(bet int64, ranks ...game.Rank) HandState {
	h := HandState{Bet: bet}
	for _, r := range ranks {
		h.Cards = append(h.Cards, game.Card{Rank: r, Suit: game.Clubs})
	}
	return h
}

func TestSettleSingleHand(t *testing.T) {
	tests := []struct {
		name   string
		player HandState
		dealer []game.Rank
		tag    string
		gross  int64
	}{
		{"player higher wins even", hand(100, game.Ten, game.Nine), []game.Rank{game.Ten, game.Eight}, "win", 200},
		{"player lower loses", hand(100, game.Ten, game.Seven), []game.Rank{game.Ten, game.Nine}, "loss", 0},
		{"equal totals push", hand(100, game.Ten, game.Eight), []game.Rank{game.Ten, game.Eight}, "push", 100},
		{"dealer bust pays even", hand(100, game.Ten, game.Two), []game.Rank{game.Ten, game.Six, game.King}, "win", 200},
		{"player bust loses even if dealer busts", hand(100, game.Ten, game.Six, game.King), []game.Rank{game.Ten, game.Six, game.King}, "loss", 0},
		{"natural pays three to two", hand(100, game.Ace, game.King), []game.Rank{game.Ten, game.Seven}, "win", 250},
		{"natural against natural pushes", hand(100, game.Ace, game.King), []game.Rank{game.Ace, game.Queen}, "push", 100},
		{"three-card 21 pushes equal dealer total", hand(100, game.Seven, game.Seven, game.Seven), []game.Rank{game.Ace, game.Queen}, "push", 100},
		{"surrender returns half", func() HandState {
			h := hand(100, game.Ten, game.Six)
			h.Surrendered = true
			return h
		}(), []game.Rank{game.Ten, game.Seven}, "surrender", 50},
		{"odd bet surrender rounds down", func() HandState {
			h := hand(15, game.Ten, game.Six)
			h.Surrendered = true
			return h
		}(), []game.Rank{game.Ten, game.Seven}, "surrender", 7},
		{"split two-card 21 pays even money", func() HandState {
			h := hand(100, game.Ace, game.King)
			h.FromSplit = true
			return h
		}(), []game.Rank{game.Ten, game.Eight}, "win", 200},
		{"doubled win pays on doubled bet", func() HandState {
			h := hand(200, game.Five, game.Six, game.Ten)
			h.Doubled = true
			return h
		}(), []game.Rank{game.Ten, game.Seven}, "win", 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{Hands: []HandState{tt.player}}
			for _, r := range tt.dealer {
				s.Dealer.Add(game.Card{Rank: r, Suit: game.Diamonds})
			}
			res := settle(s)
			if res.Tag != tt.tag || res.Gross != tt.gross {
				t.Fatalf("settle = %q/%d, want %q/%d", res.Tag, res.Gross, tt.tag, tt.gross)
			}
		})
	}
}

func TestSettleAggregation(t *testing.T) {
	dealer := []game.Rank{game.Ten, game.Eight} // 18

	win := hand(100, game.Ten, game.Nine)
	loss := hand(100, game.Ten, game.Seven)
	push := hand(100, game.Ten, game.Eight)
	surr := hand(100, game.Ten, game.Six)
	surr.Surrendered = true

	tests := []struct {
		name  string
		hands []HandState
		tag   string
		gross int64
	}{
		{"all win", []HandState{win, win}, "win", 400},
		{"all lose", []HandState{loss, loss}, "loss", 0},
		{"all push", []HandState{push, push}, "push", 200},
		{"all surrender", []HandState{surr, surr}, "surrender", 100},
		{"win and loss is mixed", []HandState{win, loss}, "mixed", 200},
		{"win and push still wins", []HandState{win, push}, "win", 300},
		{"loss and push still loses", []HandState{loss, push}, "loss", 100},
		{"loss and surrender still loses", []HandState{loss, surr}, "loss", 50},
		{"win and surrender still wins", []HandState{win, surr}, "win", 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &State{Hands: tt.hands}
			for _, r := range dealer {
				s.Dealer.Add(game.Card{Rank: r, Suit: game.Diamonds})
			}
			res := settle(s)
			if res.Tag != tt.tag || res.Gross != tt.gross {
				t.Fatalf("settle = %q/%d, want %q/%d", res.Tag, res.Gross, tt.tag, tt.gross)
			}
			if len(res.PerHand) != len(tt.hands) {
				t.Fatalf("per-hand results = %d, want %d", len(res.PerHand), len(tt.hands))
			}
		})
	}
}
