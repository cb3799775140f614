// Package entity defines the core business entities for the reconciliation domain.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side identifies which ledger a transaction record belongs to.
type Side string

const (
	SideBank Side = "BANK"
	SideBook Side = "BOOK"
)

// RawRecord is a loosely-typed transaction row as supplied by a collaborator
// (ledger import, synced feed, or manual upload). Amount and date are kept as
// strings; parsing and validation happen during normalization.
type RawRecord struct {
	ID          string
	Amount      string
	Date        string
	Description string
}

// TransactionRecord is one normalized ledger entry. It is created once during
// normalization and immutable afterwards.
//
// Amount is an exact fixed-point value. Binary floating point is never used
// for amounts because downstream sums must reconcile to the cent.
type TransactionRecord struct {
	ID          string
	Amount      decimal.Decimal
	OccurredOn  time.Time
	Description string
	Side        Side
}

// SyntheticID builds a stable identifier for records the collaborator did not
// identify, derived from the record's position in its input sequence.
func SyntheticID(side Side, position int) string {
	return fmt.Sprintf("%s-%d", strings.ToLower(string(side)), position)
}
