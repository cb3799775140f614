// Package ledgerfile reads raw transaction records from ledger files.
// Parsing of amounts and dates belongs to the normalizer; readers only carry
// the text through.
package ledgerfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledger-recon/engine/internal/application/adapter"
	"github.com/ledger-recon/engine/internal/domain/entity"
	domainerror "github.com/ledger-recon/engine/internal/domain/error"
)

// CSVLedgerSource implements adapter.LedgerSource for CSV ledgers. Each side
// may span multiple files; rows keep file order, files keep argument order.
type CSVLedgerSource struct {
	bankPaths []string
	bookPaths []string
}

var _ adapter.LedgerSource = (*CSVLedgerSource)(nil)

// NewCSVLedgerSource creates a new source over the given file sets.
func NewCSVLedgerSource(bankPaths, bookPaths []string) *CSVLedgerSource {
	return &CSVLedgerSource{bankPaths: bankPaths, bookPaths: bookPaths}
}

// GetBankRecords reads and concatenates the bank-side CSV files.
func (s *CSVLedgerSource) GetBankRecords(ctx context.Context) ([]entity.RawRecord, error) {
	return s.readAll(ctx, s.bankPaths)
}

// GetBookRecords reads and concatenates the book-side CSV files.
func (s *CSVLedgerSource) GetBookRecords(ctx context.Context) ([]entity.RawRecord, error) {
	return s.readAll(ctx, s.bookPaths)
}

func (s *CSVLedgerSource) readAll(ctx context.Context, paths []string) ([]entity.RawRecord, error) {
	records := make([]entity.RawRecord, 0)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileRecords, err := readCSVFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, fileRecords...)
	}
	return records, nil
}

func readCSVFile(path string) ([]entity.RawRecord, error) {
	if path == "" {
		return nil, domainerror.ErrEmptyLedgerPath
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, domainerror.ErrMissingLedgerHeader)
	}
	columns, err := buildColumnMap(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []entity.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		records = append(records, entity.RawRecord{
			ID:          fieldAt(row, columns, "id"),
			Amount:      fieldAt(row, columns, "amount"),
			Date:        fieldAt(row, columns, "date"),
			Description: fieldAt(row, columns, "description"),
		})
	}
	return records, nil
}

// buildColumnMap resolves header names to column positions so files may order
// their columns freely. amount and date are required; id and description are
// optional.
func buildColumnMap(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"amount", "date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", domainerror.ErrMissingLedgerColumn, required)
		}
	}
	return columns, nil
}

func fieldAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
