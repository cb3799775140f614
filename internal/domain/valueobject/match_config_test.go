// Package valueobject contains domain value objects for the reconciliation engine.
package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledger-recon/engine/internal/domain/error"
)

func TestMatchConfig_Validate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		if err := DefaultMatchConfig().Validate(); err != nil {
			t.Errorf("expected default config to validate, got %v", err)
		}
	})

	t.Run("weights must sum to 1", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.DescriptionWeight = 0.6
		err := cfg.Validate()
		if !errors.Is(err, domainerror.ErrWeightsDoNotSumToOne) {
			t.Errorf("expected ErrWeightsDoNotSumToOne, got %v", err)
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.DateWeight = -0.2
		cfg.AmountWeight = 0.7
		if err := cfg.Validate(); !errors.Is(err, domainerror.ErrWeightsDoNotSumToOne) {
			t.Errorf("expected ErrWeightsDoNotSumToOne, got %v", err)
		}
	})

	t.Run("negative amount tolerance rejected", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.AmountToleranceAbsolute = decimal.NewFromFloat(-0.01)
		if err := cfg.Validate(); !errors.Is(err, domainerror.ErrNegativeTolerance) {
			t.Errorf("expected ErrNegativeTolerance, got %v", err)
		}
	})

	t.Run("negative date tolerance rejected", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.DateToleranceDays = -1
		if err := cfg.Validate(); !errors.Is(err, domainerror.ErrNegativeTolerance) {
			t.Errorf("expected ErrNegativeTolerance, got %v", err)
		}
	})

	t.Run("acceptance threshold outside unit interval rejected", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.AcceptanceThreshold = 1.5
		if err := cfg.Validate(); !errors.Is(err, domainerror.ErrInvalidThreshold) {
			t.Errorf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("suggestion threshold cannot exceed acceptance threshold", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.SuggestionThreshold = 0.9
		cfg.AcceptanceThreshold = 0.8
		if err := cfg.Validate(); !errors.Is(err, domainerror.ErrThresholdOrder) {
			t.Errorf("expected ErrThresholdOrder, got %v", err)
		}
	})

	t.Run("top-k below one rejected", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.SuggestionTopK = 0
		if err := cfg.Validate(); !errors.Is(err, domainerror.ErrInvalidTopK) {
			t.Errorf("expected ErrInvalidTopK, got %v", err)
		}
	})

	t.Run("validation error carries a code", func(t *testing.T) {
		cfg := DefaultMatchConfig()
		cfg.SuggestionTopK = 0
		err := cfg.Validate()

		var recErr *domainerror.ReconciliationError
		if !errors.As(err, &recErr) {
			t.Fatalf("expected *ReconciliationError, got %T", err)
		}
		if recErr.Code != domainerror.ErrCodeInvalidTopK {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTopK, recErr.Code)
		}
	})
}

func TestMatchConfig_IsWithinTolerance(t *testing.T) {
	tests := []struct {
		name     string
		absolute float64
		percent  float64
		bank     string
		book     string
		want     bool
	}{
		{"equal amounts", 0.01, 0, "100.00", "100.00", true},
		{"within absolute tolerance", 0.01, 0, "100.00", "100.01", true},
		{"outside absolute tolerance", 0.01, 0, "100.00", "100.02", false},
		{"ten times mismatch", 0.01, 0, "500.00", "50.00", false},
		{"within relative tolerance", 0.01, 0.02, "100.00", "101.50", true},
		{"outside relative tolerance", 0.01, 0.02, "100.00", "103.00", false},
		{"relative disabled when zero", 0.01, 0, "100.00", "101.50", false},
		{"negative amounts compare on difference", 0.01, 0, "-100.00", "-100.00", true},
		{"zero bank amount skips relative check", 0.01, 0.02, "0.00", "5.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMatchConfig()
			cfg.AmountToleranceAbsolute = decimal.NewFromFloat(tt.absolute)
			cfg.AmountTolerancePercent = decimal.NewFromFloat(tt.percent)

			bank := decimal.RequireFromString(tt.bank)
			book := decimal.RequireFromString(tt.book)
			if got := cfg.IsWithinTolerance(bank, book); got != tt.want {
				t.Errorf("IsWithinTolerance(%s, %s) = %v, want %v", tt.bank, tt.book, got, tt.want)
			}
		})
	}
}

func TestMatchConfig_HardToleranceFor(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.AmountToleranceAbsolute = decimal.NewFromFloat(0.01)
	cfg.AmountTolerancePercent = decimal.NewFromFloat(0.02)

	t.Run("relative bound wins for large amounts", func(t *testing.T) {
		got := cfg.HardToleranceFor(decimal.NewFromInt(100))
		if !got.Equal(decimal.NewFromInt(2)) {
			t.Errorf("expected 2, got %s", got)
		}
	})

	t.Run("absolute bound wins for small amounts", func(t *testing.T) {
		got := cfg.HardToleranceFor(decimal.RequireFromString("0.10"))
		if !got.Equal(decimal.NewFromFloat(0.01)) {
			t.Errorf("expected 0.01, got %s", got)
		}
	})
}
