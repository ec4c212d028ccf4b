package config

import "testing"

func TestLoadEconomyDefaults(t *testing.T) {
	cfg, err := LoadEconomy()
	if err != nil {
		t.Fatalf("LoadEconomy() error = %v", err)
	}
	if cfg.StartingBalance != 1000 {
		t.Fatalf("StartingBalance = %d, want 1000", cfg.StartingBalance)
	}
	if cfg.MinBet != 10 {
		t.Fatalf("MinBet = %d, want 10", cfg.MinBet)
	}
	if cfg.MaxBet != 100000 {
		t.Fatalf("MaxBet = %d, want 100000", cfg.MaxBet)
	}
	if cfg.DailyBonusCooldownHours != 24 {
		t.Fatalf("DailyBonusCooldownHours = %d, want 24", cfg.DailyBonusCooldownHours)
	}
}

func TestLoadEconomyParseTypes(t *testing.T) {
	t.Setenv("STARTING_BALANCE", "2500")
	t.Setenv("MIN_BET", "5")
	t.Setenv("DAILY_BONUS_AMOUNT", "750")

	cfg, err := LoadEconomy()
	if err != nil {
		t.Fatalf("LoadEconomy() error = %v", err)
	}
	if cfg.StartingBalance != 2500 {
		t.Fatalf("StartingBalance = %d, want 2500", cfg.StartingBalance)
	}
	if cfg.MinBet != 5 {
		t.Fatalf("MinBet = %d, want 5", cfg.MinBet)
	}
	if cfg.DailyBonusAmount != 750 {
		t.Fatalf("DailyBonusAmount = %d, want 750", cfg.DailyBonusAmount)
	}
}
