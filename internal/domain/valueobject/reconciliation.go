// Package valueobject contains domain value objects for the reconciliation engine.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/ledger-recon/engine/internal/domain/entity"
)

// MatchKind distinguishes cent-and-day exact matches from fuzzy ones.
type MatchKind string

const (
	MatchKindExact MatchKind = "EXACT"
	MatchKindFuzzy MatchKind = "FUZZY"
)

// ReportStatus is the overall outcome of a reconciliation run.
type ReportStatus string

const (
	StatusReconciled    ReportStatus = "RECONCILED"
	StatusDiscrepancies ReportStatus = "DISCREPANCIES"
)

// ScoreBreakdown carries the per-signal sub-scores behind a composite score,
// each in [0, 1]. It is attached to suggestions for explainability.
type ScoreBreakdown struct {
	Amount      float64
	Date        float64
	Description float64
}

// Match is a committed pairing. Once created it is final for the run; the
// book record is consumed and cannot appear in any later match.
type Match struct {
	Bank      entity.TransactionRecord
	Book      entity.TransactionRecord
	Composite float64
	Kind      MatchKind
}

// Suggestion ranks one candidate record for human review. Unlike a Match it
// commits nothing.
type Suggestion struct {
	Candidate  entity.TransactionRecord
	Confidence float64
	Breakdown  ScoreBreakdown
}

// ReconciliationReport aggregates the outcome of one batch run. It is built
// once by the report builder and read-only afterwards.
type ReconciliationReport struct {
	Status        ReportStatus
	Matches       []Match
	UnmatchedBank []entity.TransactionRecord
	UnmatchedBook []entity.TransactionRecord

	// Ledger-level sums, fixed-point throughout. AmountDifference is
	// TotalBankAmount - TotalBookAmount and is a signal independent of
	// matching success: two ledgers can agree in total while still holding
	// offsetting unmatched errors.
	TotalBankAmount  decimal.Decimal
	TotalBookAmount  decimal.Decimal
	MatchedAmount    decimal.Decimal
	AmountDifference decimal.Decimal
}
