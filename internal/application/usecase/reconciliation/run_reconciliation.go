// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-recon/engine/internal/application/adapter"
	"github.com/ledger-recon/engine/internal/domain/entity"
	domainerror "github.com/ledger-recon/engine/internal/domain/error"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// RunReconciliationInput represents the input for one batch run.
type RunReconciliationInput struct {
	// Strategy selects the candidate lookup strategy. Empty means the
	// bucket index; StrategyPairwiseScan is the reference scan.
	Strategy IndexStrategy
}

// RunReconciliationOutput represents the result of one batch run.
type RunReconciliationOutput struct {
	RunID  uuid.UUID
	Report valueobject.ReconciliationReport

	// Per-record normalization errors. These never abort the run.
	DroppedBank []NormalizationError
	DroppedBook []NormalizationError
}

// RunReconciliationUseCase handles a full batch reconciliation run:
// normalize both feeds, index the book side, greedily assign matches, and
// build the report. Each run owns its entities exclusively; nothing is
// shared across concurrent runs and nothing outlives the call.
type RunReconciliationUseCase struct {
	source adapter.LedgerSource
	audit  adapter.AuditSink
	cfg    valueobject.MatchConfig
}

// NewRunReconciliationUseCase creates a new RunReconciliationUseCase
// instance. Configuration errors are fatal here, before any matching begins.
func NewRunReconciliationUseCase(
	source adapter.LedgerSource,
	audit adapter.AuditSink,
	cfg valueobject.MatchConfig,
) (*RunReconciliationUseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if audit == nil {
		audit = adapter.NoopAuditSink{}
	}
	return &RunReconciliationUseCase{
		source: source,
		audit:  audit,
		cfg:    cfg,
	}, nil
}

// Execute runs the reconciliation. Once the input feeds are read, the run
// always completes with a report: unmatched records are a first-class
// outcome, not an error.
func (uc *RunReconciliationUseCase) Execute(ctx context.Context, input RunReconciliationInput) (*RunReconciliationOutput, error) {
	rawBank, err := uc.source.GetBankRecords(ctx)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeLedgerRead,
			"could not read bank records",
			err,
		)
	}
	rawBook, err := uc.source.GetBookRecords(ctx)
	if err != nil {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeLedgerRead,
			"could not read book records",
			err,
		)
	}

	bank := NormalizeRecords(rawBank, entity.SideBank)
	book := NormalizeRecords(rawBook, entity.SideBook)

	index := newCandidateIndex(input.Strategy, uc.cfg, book.Records)
	m := &matcher{cfg: uc.cfg, index: index}
	matches, unmatchedBank := m.run(bank.Records)

	unmatchedBook := make([]entity.TransactionRecord, 0)
	for _, e := range index.Live() {
		unmatchedBook = append(unmatchedBook, e.record)
	}

	report := buildReport(bank.Records, book.Records, matches, unmatchedBank, unmatchedBook)

	output := &RunReconciliationOutput{
		RunID:       uuid.New(),
		Report:      report,
		DroppedBank: bank.Dropped,
		DroppedBook: book.Dropped,
	}

	uc.audit.RecordRun(ctx, adapter.RunAudit{
		RunID:         output.RunID,
		Action:        "reconcile_transactions",
		Status:        report.Status,
		BankCount:     len(bank.Records),
		BookCount:     len(book.Records),
		MatchCount:    len(report.Matches),
		UnmatchedBank: len(report.UnmatchedBank),
		UnmatchedBook: len(report.UnmatchedBook),
		DroppedBank:   len(bank.Dropped),
		DroppedBook:   len(book.Dropped),
	})

	return output, nil
}
