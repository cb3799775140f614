// Package adapters provides implementations of application adapter interfaces.
package adapters

import (
	"context"
	"log/slog"

	"github.com/ledger-recon/engine/internal/application/adapter"
)

// SlogAuditSink records run metadata through a structured logger. The engine
// hands it one summary per run; nothing inside the engine logs.
type SlogAuditSink struct {
	logger *slog.Logger
}

// NewSlogAuditSink creates a new SlogAuditSink. A nil logger falls back to
// the default slog logger.
func NewSlogAuditSink(logger *slog.Logger) *SlogAuditSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAuditSink{logger: logger}
}

var _ adapter.AuditSink = (*SlogAuditSink)(nil)

// RecordRun implements adapter.AuditSink.
func (s *SlogAuditSink) RecordRun(ctx context.Context, audit adapter.RunAudit) {
	s.logger.InfoContext(ctx, "reconciliation run completed",
		"run_id", audit.RunID.String(),
		"action", audit.Action,
		"status", string(audit.Status),
		"bank_records", audit.BankCount,
		"book_records", audit.BookCount,
		"matched", audit.MatchCount,
		"unmatched_bank", audit.UnmatchedBank,
		"unmatched_book", audit.UnmatchedBook,
		"dropped_bank", audit.DroppedBank,
		"dropped_book", audit.DroppedBook,
	)
}
