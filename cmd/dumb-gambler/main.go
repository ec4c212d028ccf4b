package main

import (
	"context"
	"errors"

	"clover-casino/internal/config"
	"clover-casino/internal/game"
	"clover-casino/internal/game/blackjack"
	"clover-casino/internal/game/roulette"
	"clover-casino/internal/game/twentyone"
	"clover-casino/internal/ledger"
	"clover-casino/internal/logging"
	"clover-casino/internal/store"

	"github.com/rs/zerolog/log"
)

// dumb-gambler plays random rounds of every game against a local ledger.
// Useful for smoke-testing the whole stack and for generating history data.
func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	closeLog, err := logging.Init(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer closeLog()

	st, err := store.Open(cfg.Store.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store open failed")
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if err := st.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema init failed")
	}

	led := ledger.New(st, cfg.Economy)
	const accountID = 1

	acct, err := led.GetOrCreateAccount(ctx, accountID, "dumb-gambler")
	if err != nil {
		log.Fatal().Err(err).Msg("account init failed")
	}
	log.Info().Int64("balance", acct.Balance).Msg("gambler ready")

	if bonus, err := led.ClaimBonus(ctx, accountID); err == nil {
		log.Info().Int64("balance", bonus).Msg("daily bonus claimed")
	} else if !errors.Is(err, ledger.ErrBonusNotReady) {
		log.Fatal().Err(err).Msg("bonus claim failed")
	}

	bj := blackjack.NewEngine(led, blackjack.RulesFromConfig(cfg.Blackjack))
	rl := roulette.NewEngine(led)
	to := twentyone.NewEngine(led)

	for i := 0; i < 20; i++ {
		bal, err := led.Balance(ctx, accountID)
		if err != nil {
			log.Fatal().Err(err).Msg("balance read failed")
		}
		if bal < cfg.Economy.MinBet {
			log.Info().Int64("balance", bal).Msg("busted out")
			break
		}
		bet := cfg.Economy.MinBet * int64(1+game.RandomInt(5))
		if bet > bal {
			bet = cfg.Economy.MinBet
		}

		switch game.RandomInt(3) {
		case 0:
			err = playBlackjack(ctx, bj, accountID, bet)
		case 1:
			err = playRoulette(ctx, rl, accountID, bet)
		default:
			err = playTwentyOne(ctx, to, accountID, bet)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("round failed")
		}
	}

	entries, err := led.History(ctx, accountID, store.HistoryFilter{}, 50)
	if err != nil {
		log.Fatal().Err(err).Msg("history read failed")
	}
	var net int64
	for _, e := range entries {
		net += e.Net
	}
	final, _ := led.Balance(ctx, accountID)
	log.Info().Int("rounds", len(entries)).Int64("net", net).
		Int64("balance", final).Msg("session over")
}

func playBlackjack(ctx context.Context, e *blackjack.Engine, id int64, bet int64) error {
	s, err := e.Begin(ctx, id, bet)
	if err != nil {
		return err
	}
	for s.Phase == blackjack.PhaseInProgress {
		action := blackjack.ActionStand
		if h := s.CurrentHand(); h != nil && h.Value() < 17 {
			action = blackjack.ActionHit
		}
		if s, err = e.Apply(ctx, id, action); err != nil {
			return err
		}
	}
	for {
		_, done, err := e.DealerStep(ctx, id)
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	_, res, err := e.Resolve(ctx, id)
	if err != nil {
		return err
	}
	log.Info().Str("game", blackjack.Game).Str("result", res.Tag).
		Int64("payout", res.Gross).Int("dealer", res.DealerValue).Msg("round done")
	return nil
}

func playRoulette(ctx context.Context, e *roulette.Engine, id int64, bet int64) error {
	kinds := []roulette.WagerKind{
		roulette.KindRed, roulette.KindBlack, roulette.KindOdd,
		roulette.KindEven, roulette.KindLow, roulette.KindHigh,
	}
	w := roulette.Wager{Kind: kinds[game.RandomInt(len(kinds))], Amount: bet}
	if game.RandomInt(6) == 0 {
		w = roulette.Wager{Kind: roulette.KindStraight, Value: game.RandomInt(37), Amount: bet}
	}
	if _, err := e.Begin(ctx, id, w); err != nil {
		return err
	}
	if _, err := e.Spin(ctx, id); err != nil {
		return err
	}
	_, res, err := e.Resolve(ctx, id)
	if err != nil {
		return err
	}
	log.Info().Str("game", roulette.Game).Str("result", res.Tag).
		Int("number", res.Number).Int64("payout", res.Gross).Msg("round done")
	return nil
}

func playTwentyOne(ctx context.Context, e *twentyone.Engine, id int64, bet int64) error {
	s, err := e.Begin(ctx, id, bet)
	if err != nil {
		return err
	}
	var res *twentyone.Result
	for res == nil && s.Player.Value() < 17 {
		if s, res, err = e.Hit(ctx, id); err != nil {
			return err
		}
	}
	if res == nil {
		if _, res, err = e.Stand(ctx, id); err != nil {
			return err
		}
	}
	log.Info().Str("game", twentyone.Game).Str("result", res.Tag).
		Int64("payout", res.Gross).Int("player", res.PlayerValue).
		Int("dealer", res.DealerValue).Msg("round done")
	return nil
}
