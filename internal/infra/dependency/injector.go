// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/ledger-recon/engine/config"
	"github.com/ledger-recon/engine/internal/application/adapter"
	"github.com/ledger-recon/engine/internal/application/usecase/reconciliation"
	"github.com/ledger-recon/engine/internal/integration/adapters"
	"github.com/ledger-recon/engine/internal/integration/ledgerfile"
)

// LedgerFormat selects the reader wired behind the ledger source.
type LedgerFormat string

const (
	FormatCSV  LedgerFormat = "csv"
	FormatJSON LedgerFormat = "json"
)

// Sources describes the input files for one reconciliation run.
type Sources struct {
	Format    LedgerFormat
	BankPaths []string
	BookPaths []string
}

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	Source         adapter.LedgerSource
	AuditSink      adapter.AuditSink
	Reconciliation *reconciliation.RunReconciliationUseCase
	Suggestions    *reconciliation.SuggestMatchesUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, sources Sources, logger *slog.Logger) (*Injector, error) {
	var source adapter.LedgerSource
	switch sources.Format {
	case FormatCSV:
		source = ledgerfile.NewCSVLedgerSource(sources.BankPaths, sources.BookPaths)
	case FormatJSON:
		if len(sources.BankPaths) != 1 || len(sources.BookPaths) != 1 {
			return nil, fmt.Errorf("json format expects exactly one file per side")
		}
		source = ledgerfile.NewJSONLedgerSource(sources.BankPaths[0], sources.BookPaths[0])
	default:
		return nil, fmt.Errorf("unknown ledger format %q", sources.Format)
	}

	auditSink := adapters.NewSlogAuditSink(logger)
	matchConfig := cfg.Matching.ToMatchConfig()

	reconciliationUseCase, err := reconciliation.NewRunReconciliationUseCase(source, auditSink, matchConfig)
	if err != nil {
		return nil, err
	}
	suggestionsUseCase, err := reconciliation.NewSuggestMatchesUseCase(matchConfig)
	if err != nil {
		return nil, err
	}

	return &Injector{
		Config:         cfg,
		Source:         source,
		AuditSink:      auditSink,
		Reconciliation: reconciliationUseCase,
		Suggestions:    suggestionsUseCase,
	}, nil
}
