package config

import "github.com/caarlos0/env/v11"

type EconomyConfig struct {
	StartingBalance int64 `env:"STARTING_BALANCE" envDefault:"1000"`
	MinBet          int64 `env:"MIN_BET" envDefault:"10"`
	MaxBet          int64 `env:"MAX_BET" envDefault:"100000"`

	DailyBonusAmount        int64 `env:"DAILY_BONUS_AMOUNT" envDefault:"500"`
	DailyBonusCooldownHours int   `env:"DAILY_BONUS_COOLDOWN_HOURS" envDefault:"24"`
}

func LoadEconomy() (EconomyConfig, error) {
	var cfg EconomyConfig
	err := env.Parse(&cfg)
	return cfg, err
}
