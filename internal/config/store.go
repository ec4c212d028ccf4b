package config

import "github.com/caarlos0/env/v11"

type StoreConfig struct {
	// DSN is either a postgres:// URL or a path to a SQLite file.
	DSN string `env:"DATABASE_DSN" envDefault:"casino.db"`
}

func LoadStore() (StoreConfig, error) {
	var cfg StoreConfig
	err := env.Parse(&cfg)
	return cfg, err
}
