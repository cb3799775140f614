package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults apply without environment", func(t *testing.T) {
		cfg := Load()

		if cfg.Matching.AmountToleranceAbsolute != 0.01 {
			t.Errorf("expected default amount tolerance 0.01, got %v", cfg.Matching.AmountToleranceAbsolute)
		}
		if cfg.Matching.DateToleranceDays != 3 {
			t.Errorf("expected default date tolerance 3, got %d", cfg.Matching.DateToleranceDays)
		}
		if cfg.Matching.SuggestionTopK != 5 {
			t.Errorf("expected default top-k 5, got %d", cfg.Matching.SuggestionTopK)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("expected default log level info, got %s", cfg.Log.Level)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("RECON_AMOUNT_TOLERANCE", "0.05")
		t.Setenv("RECON_DATE_TOLERANCE_DAYS", "7")
		t.Setenv("RECON_LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.Matching.AmountToleranceAbsolute != 0.05 {
			t.Errorf("expected amount tolerance 0.05, got %v", cfg.Matching.AmountToleranceAbsolute)
		}
		if cfg.Matching.DateToleranceDays != 7 {
			t.Errorf("expected date tolerance 7, got %d", cfg.Matching.DateToleranceDays)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", cfg.Log.Level)
		}
	})

	t.Run("unparseable values fall back to defaults", func(t *testing.T) {
		t.Setenv("RECON_DATE_TOLERANCE_DAYS", "never")

		cfg := Load()
		if cfg.Matching.DateToleranceDays != 3 {
			t.Errorf("expected fallback date tolerance 3, got %d", cfg.Matching.DateToleranceDays)
		}
	})

	t.Run("loaded values convert to a valid engine config", func(t *testing.T) {
		cfg := Load()
		if err := cfg.Matching.ToMatchConfig().Validate(); err != nil {
			t.Errorf("expected loaded defaults to validate, got %v", err)
		}
	})
}
