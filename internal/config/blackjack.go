package config

import "github.com/caarlos0/env/v11"

type BlackjackConfig struct {
	ShoeDecks         int     `env:"BJ_SHOE_DECKS" envDefault:"6"`
	ReshuffleFraction float64 `env:"BJ_RESHUFFLE_FRACTION" envDefault:"0.25"`

	MaxHands         int  `env:"BJ_MAX_HANDS" envDefault:"4"`
	SplitRankFamily  bool `env:"BJ_SPLIT_RANK_FAMILY" envDefault:"false"`
	DoubleAfterSplit bool `env:"BJ_DOUBLE_AFTER_SPLIT" envDefault:"true"`
	SurrenderEnabled bool `env:"BJ_SURRENDER_ENABLED" envDefault:"true"`
}

func LoadBlackjack() (BlackjackConfig, error) {
	var cfg BlackjackConfig
	err := env.Parse(&cfg)
	return cfg, err
}
