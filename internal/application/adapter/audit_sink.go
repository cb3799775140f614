// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// RunAudit carries run metadata for the caller's audit trail. The engine
// itself never logs; it hands this summary to whatever sink the caller wired.
type RunAudit struct {
	RunID         uuid.UUID
	Action        string
	Status        valueobject.ReportStatus
	BankCount     int
	BookCount     int
	MatchCount    int
	UnmatchedBank int
	UnmatchedBook int
	DroppedBank   int
	DroppedBook   int
}

// AuditSink receives run metadata after a reconciliation run completes.
type AuditSink interface {
	RecordRun(ctx context.Context, audit RunAudit)
}

// NoopAuditSink discards run metadata. Used when the caller wired no sink.
type NoopAuditSink struct{}

// RecordRun implements AuditSink.
func (NoopAuditSink) RecordRun(context.Context, RunAudit) {}
