// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// amountDecayFactor bounds the partial-credit band for the amount sub-score:
// full credit within the hard tolerance, decaying to zero at this multiple.
const amountDecayFactor = 5

// scorePair computes the composite similarity between a bank record and a
// book record, with the sub-score breakdown. It does not apply the hard
// amount-eligibility gate; the matcher checks IsWithinTolerance before
// considering a candidate at all.
func scorePair(cfg valueobject.MatchConfig, bank, book *entity.TransactionRecord) (valueobject.ScoreBreakdown, float64) {
	breakdown := valueobject.ScoreBreakdown{
		Amount:      amountScore(cfg, bank.Amount, book.Amount),
		Date:        dateScore(cfg, bank.OccurredOn, book.OccurredOn),
		Description: descriptionScore(bank.Description, book.Description),
	}
	composite := cfg.DescriptionWeight*breakdown.Description +
		cfg.AmountWeight*breakdown.Amount +
		cfg.DateWeight*breakdown.Date
	return breakdown, composite
}

// amountScore is 1 inside the hard tolerance and decays linearly to 0 at
// amountDecayFactor times the tolerance.
func amountScore(cfg valueobject.MatchConfig, bankAmount, bookAmount decimal.Decimal) float64 {
	diff := bankAmount.Sub(bookAmount).Abs()
	if diff.IsZero() {
		return 1
	}

	tolerance := cfg.HardToleranceFor(bankAmount)
	if tolerance.IsZero() {
		// Zero tolerance means exact amounts only.
		return 0
	}
	if diff.LessThanOrEqual(tolerance) {
		return 1
	}

	outer := tolerance.Mul(decimal.NewFromInt(amountDecayFactor))
	if diff.GreaterThanOrEqual(outer) {
		return 0
	}

	// Linear decay across the partial-credit band.
	ratio, _ := diff.Sub(tolerance).Div(outer.Sub(tolerance)).Float64()
	return 1 - ratio
}

// dateScore is 1 at zero day difference, decaying linearly to 0 at the
// configured day-tolerance window.
func dateScore(cfg valueobject.MatchConfig, bankDate, bookDate time.Time) float64 {
	days := math.Abs(bankDate.Sub(bookDate).Hours() / 24)
	if days == 0 {
		return 1
	}
	if cfg.DateToleranceDays == 0 {
		return 0
	}
	score := 1 - days/float64(cfg.DateToleranceDays)
	if score < 0 {
		return 0
	}
	return score
}

// descriptionScore is a normalized edit-distance ratio between the two
// lower-cased descriptions. An empty description on either side scores 0:
// absence of text is no evidence of similarity.
func descriptionScore(bankDesc, bookDesc string) float64 {
	a := strings.ToLower(strings.TrimSpace(bankDesc))
	b := strings.ToLower(strings.TrimSpace(bookDesc))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	return levenshtein.RatioForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}
