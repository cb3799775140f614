// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"github.com/shopspring/decimal"

	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// buildReport aggregates the matcher's output into the final report. Pure
// aggregation: all sums are fixed-point so large batches reconcile to the
// cent with zero drift.
func buildReport(
	bank, book []entity.TransactionRecord,
	matches []valueobject.Match,
	unmatchedBank, unmatchedBook []entity.TransactionRecord,
) valueobject.ReconciliationReport {
	totalBank := sumAmounts(bank)
	totalBook := sumAmounts(book)

	matchedAmount := decimal.Zero
	for _, m := range matches {
		matchedAmount = matchedAmount.Add(m.Bank.Amount)
	}

	status := valueobject.StatusReconciled
	if len(unmatchedBank) > 0 || len(unmatchedBook) > 0 {
		status = valueobject.StatusDiscrepancies
	}

	return valueobject.ReconciliationReport{
		Status:           status,
		Matches:          matches,
		UnmatchedBank:    unmatchedBank,
		UnmatchedBook:    unmatchedBook,
		TotalBankAmount:  totalBank,
		TotalBookAmount:  totalBook,
		MatchedAmount:    matchedAmount,
		AmountDifference: totalBank.Sub(totalBook),
	}
}

func sumAmounts(records []entity.TransactionRecord) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	return total
}
