// Package valueobject contains domain value objects for the reconciliation engine.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledger-recon/engine/internal/domain/error"
)

// MatchConfig contains the configuration for bank-to-book matching.
type MatchConfig struct {
	// Amount tolerance: a candidate is eligible when the amount difference is
	// within either bound. The percent bound is disabled when zero.
	AmountToleranceAbsolute decimal.Decimal // 0.01 = one cent
	AmountTolerancePercent  decimal.Decimal // 0.02 = 2%

	// Date tolerance
	DateToleranceDays int

	// Sub-score weights; must sum to 1.
	DescriptionWeight float64
	AmountWeight      float64
	DateWeight        float64

	// AcceptanceThreshold is the minimum composite score for an automatic match.
	AcceptanceThreshold float64

	// SuggestionThreshold is the looser floor used for human-reviewed
	// candidate lists. Must not exceed AcceptanceThreshold.
	SuggestionThreshold float64

	// SuggestionTopK is how many ranked suggestions to return.
	SuggestionTopK int
}

// DefaultMatchConfig returns the default matching configuration.
//
// The default amount tolerance is absolute (one cent); the relative bound is
// disabled until explicitly configured.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		AmountToleranceAbsolute: decimal.NewFromFloat(0.01),
		AmountTolerancePercent:  decimal.Zero,
		DateToleranceDays:       3,
		DescriptionWeight:       0.5,
		AmountWeight:            0.3,
		DateWeight:              0.2,
		AcceptanceThreshold:     0.85,
		SuggestionThreshold:     0.5,
		SuggestionTopK:          5,
	}
}

// Validate checks the configuration for values that would silently bias every
// result. It is meant to be called at construction time, before any matching.
func (c MatchConfig) Validate() error {
	if c.AmountToleranceAbsolute.IsNegative() || c.AmountTolerancePercent.IsNegative() {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeNegativeTolerance,
			"amount tolerance cannot be negative",
			domainerror.ErrNegativeTolerance,
		)
	}
	if c.DateToleranceDays < 0 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeNegativeTolerance,
			"date tolerance cannot be negative",
			domainerror.ErrNegativeTolerance,
		)
	}
	if c.DescriptionWeight < 0 || c.AmountWeight < 0 || c.DateWeight < 0 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeWeightsDoNotSumToOne,
			"score weights cannot be negative",
			domainerror.ErrWeightsDoNotSumToOne,
		)
	}
	sum := c.DescriptionWeight + c.AmountWeight + c.DateWeight
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeWeightsDoNotSumToOne,
			"score weights must sum to 1",
			domainerror.ErrWeightsDoNotSumToOne,
		)
	}
	if c.AcceptanceThreshold < 0 || c.AcceptanceThreshold > 1 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidThreshold,
			"acceptance threshold must be between 0 and 1",
			domainerror.ErrInvalidThreshold,
		)
	}
	if c.SuggestionThreshold < 0 || c.SuggestionThreshold > 1 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidThreshold,
			"suggestion threshold must be between 0 and 1",
			domainerror.ErrInvalidThreshold,
		)
	}
	if c.SuggestionThreshold > c.AcceptanceThreshold {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeThresholdOrder,
			"suggestion threshold cannot exceed acceptance threshold",
			domainerror.ErrThresholdOrder,
		)
	}
	if c.SuggestionTopK < 1 {
		return domainerror.NewReconciliationError(
			domainerror.ErrCodeInvalidTopK,
			"suggestion top-k must be at least 1",
			domainerror.ErrInvalidTopK,
		)
	}
	return nil
}

// weightSumEpsilon absorbs float rounding when checking the weight sum.
const weightSumEpsilon = 1e-9

// IsWithinTolerance checks if the amount difference between a bank record and
// a book record is within acceptable tolerance.
func (c MatchConfig) IsWithinTolerance(bankAmount, bookAmount decimal.Decimal) bool {
	diff := bankAmount.Sub(bookAmount).Abs()

	// Check absolute tolerance first (for small amounts)
	if diff.LessThanOrEqual(c.AmountToleranceAbsolute) {
		return true
	}

	// Check percentage tolerance
	if c.AmountTolerancePercent.IsZero() || bankAmount.IsZero() {
		return false
	}
	percentDiff := diff.Div(bankAmount.Abs())
	return percentDiff.LessThanOrEqual(c.AmountTolerancePercent)
}

// HardToleranceFor resolves the effective amount tolerance for one bank
// amount: the larger of the absolute bound and the relative bound.
func (c MatchConfig) HardToleranceFor(bankAmount decimal.Decimal) decimal.Decimal {
	tolerance := c.AmountToleranceAbsolute
	if !c.AmountTolerancePercent.IsZero() {
		relative := bankAmount.Abs().Mul(c.AmountTolerancePercent)
		if relative.GreaterThan(tolerance) {
			tolerance = relative
		}
	}
	return tolerance
}
