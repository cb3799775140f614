// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/ledger-recon/engine/internal/domain/entity"
)

// LedgerSource supplies the raw transaction records for one reconciliation
// run. Implementations own whatever file format or feed they read from; the
// engine only sees in-memory sequences.
//
//go:generate mockgen -destination=mocks/mock_ledger_source.go -package=mocks -source=ledger_source.go LedgerSource
type LedgerSource interface {
	// GetBankRecords returns the bank-side ledger rows in a stable,
	// caller-visible order. The order drives deterministic matching.
	GetBankRecords(ctx context.Context) ([]entity.RawRecord, error)

	// GetBookRecords returns the book-side ledger rows in a stable order.
	GetBookRecords(ctx context.Context) ([]entity.RawRecord, error)
}
