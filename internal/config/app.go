package config

type AppConfig struct {
	Store     StoreConfig
	Economy   EconomyConfig
	Blackjack BlackjackConfig
	Log       LogConfig
}

func LoadApp() (AppConfig, error) {
	storeCfg, err := LoadStore()
	if err != nil {
		return AppConfig{}, err
	}
	economyCfg, err := LoadEconomy()
	if err != nil {
		return AppConfig{}, err
	}
	blackjackCfg, err := LoadBlackjack()
	if err != nil {
		return AppConfig{}, err
	}
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Store:     storeCfg,
		Economy:   economyCfg,
		Blackjack: blackjackCfg,
		Log:       logCfg,
	}, nil
}
