package ledgerfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledger-recon/engine/internal/application/adapter"
	"github.com/ledger-recon/engine/internal/domain/entity"
	domainerror "github.com/ledger-recon/engine/internal/domain/error"
)

// JSONLedgerSource implements adapter.LedgerSource for JSON ledgers: one
// array of transaction objects per file.
type JSONLedgerSource struct {
	bankPath string
	bookPath string
}

var _ adapter.LedgerSource = (*JSONLedgerSource)(nil)

// NewJSONLedgerSource creates a new source over the given files.
func NewJSONLedgerSource(bankPath, bookPath string) *JSONLedgerSource {
	return &JSONLedgerSource{bankPath: bankPath, bookPath: bookPath}
}

// jsonTransaction tolerates amounts written as JSON numbers or strings.
type jsonTransaction struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
}

// GetBankRecords reads the bank-side JSON file.
func (s *JSONLedgerSource) GetBankRecords(ctx context.Context) ([]entity.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readJSONFile(s.bankPath)
}

// GetBookRecords reads the book-side JSON file.
func (s *JSONLedgerSource) GetBookRecords(ctx context.Context) ([]entity.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return readJSONFile(s.bookPath)
}

func readJSONFile(path string) ([]entity.RawRecord, error) {
	if path == "" {
		return nil, domainerror.ErrEmptyLedgerPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}

	var rows []jsonTransaction
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode ledger file %s: %w", path, err)
	}

	records := make([]entity.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.RawRecord{
			ID:          row.ID,
			Amount:      row.Amount.String(),
			Date:        row.Date,
			Description: row.Description,
		})
	}
	return records, nil
}
