// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledger-recon/engine/internal/domain/entity"
)

// NormalizationError describes one raw record dropped during normalization.
// Dropped records are data, not failures: the batch always proceeds.
type NormalizationError struct {
	Index int
	Field string
	Err   error
}

// Error implements the error interface.
func (e NormalizationError) Error() string {
	return fmt.Sprintf("record %d: invalid %s: %v", e.Index, e.Field, e.Err)
}

// NormalizeResult holds the typed records that survived normalization plus
// the per-record errors for the ones that did not.
type NormalizeResult struct {
	Records []entity.TransactionRecord
	Dropped []NormalizationError
}

// dateLayouts are the accepted occurred-on formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// NormalizeRecords parses raw ledger rows into immutable typed records.
// A row whose amount or date cannot be parsed is dropped and reported
// individually; it never aborts the batch. Rows without an id get a stable
// synthetic one derived from their input position.
func NormalizeRecords(raw []entity.RawRecord, side entity.Side) NormalizeResult {
	result := NormalizeResult{
		Records: make([]entity.TransactionRecord, 0, len(raw)),
		Dropped: make([]NormalizationError, 0),
	}

	for i, row := range raw {
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			result.Dropped = append(result.Dropped, NormalizationError{Index: i, Field: "amount", Err: err})
			continue
		}

		occurredOn, err := parseDate(row.Date)
		if err != nil {
			result.Dropped = append(result.Dropped, NormalizationError{Index: i, Field: "date", Err: err})
			continue
		}

		id := row.ID
		if id == "" {
			id = entity.SyntheticID(side, i)
		}

		result.Records = append(result.Records, entity.TransactionRecord{
			ID:          id,
			Amount:      amount,
			OccurredOn:  occurredOn,
			Description: row.Description,
			Side:        side,
		})
	}

	return result
}

// parseDate tries the accepted layouts in order.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
