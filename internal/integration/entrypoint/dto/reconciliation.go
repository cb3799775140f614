// Package dto defines data transfer objects for presenting engine output.
package dto

import (
	"time"

	"github.com/ledger-recon/engine/internal/application/usecase/reconciliation"
	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// TransactionRecordDTO represents one ledger entry in report output.
type TransactionRecordDTO struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Side        string `json:"side"`
}

// MatchDTO represents one committed match.
type MatchDTO struct {
	Bank           TransactionRecordDTO `json:"bank_transaction"`
	Book           TransactionRecordDTO `json:"book_transaction"`
	CompositeScore float64              `json:"composite_score"`
	Kind           string               `json:"match_kind"`
}

// DroppedRecordDTO represents one raw record excluded during normalization.
type DroppedRecordDTO struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ReconciliationReportDTO is the top-level structure for report output.
type ReconciliationReportDTO struct {
	RunID            string                 `json:"run_id"`
	Status           string                 `json:"status"`
	Matches          []MatchDTO             `json:"matches"`
	UnmatchedBank    []TransactionRecordDTO `json:"unmatched_bank"`
	UnmatchedBook    []TransactionRecordDTO `json:"unmatched_book"`
	TotalBankAmount  string                 `json:"total_bank_amount"`
	TotalBookAmount  string                 `json:"total_book_amount"`
	MatchedAmount    string                 `json:"matched_amount"`
	AmountDifference string                 `json:"amount_difference"`
	DroppedBank      []DroppedRecordDTO     `json:"dropped_bank,omitempty"`
	DroppedBook      []DroppedRecordDTO     `json:"dropped_book,omitempty"`
}

// SuggestionDTO represents one ranked candidate for human review.
type SuggestionDTO struct {
	Candidate        TransactionRecordDTO `json:"transaction"`
	Confidence       float64              `json:"confidence"`
	AmountScore      float64              `json:"amount_score"`
	DateScore        float64              `json:"date_score"`
	DescriptionScore float64              `json:"description_score"`
}

// NewReconciliationReportDTO maps a run output to its response shape.
func NewReconciliationReportDTO(output *reconciliation.RunReconciliationOutput) ReconciliationReportDTO {
	report := output.Report

	matches := make([]MatchDTO, 0, len(report.Matches))
	for _, m := range report.Matches {
		matches = append(matches, MatchDTO{
			Bank:           newTransactionRecordDTO(m.Bank),
			Book:           newTransactionRecordDTO(m.Book),
			CompositeScore: m.Composite,
			Kind:           string(m.Kind),
		})
	}

	return ReconciliationReportDTO{
		RunID:            output.RunID.String(),
		Status:           string(report.Status),
		Matches:          matches,
		UnmatchedBank:    newTransactionRecordDTOs(report.UnmatchedBank),
		UnmatchedBook:    newTransactionRecordDTOs(report.UnmatchedBook),
		TotalBankAmount:  report.TotalBankAmount.StringFixed(2),
		TotalBookAmount:  report.TotalBookAmount.StringFixed(2),
		MatchedAmount:    report.MatchedAmount.StringFixed(2),
		AmountDifference: report.AmountDifference.StringFixed(2),
		DroppedBank:      newDroppedRecordDTOs(output.DroppedBank),
		DroppedBook:      newDroppedRecordDTOs(output.DroppedBook),
	}
}

// NewSuggestionDTOs maps ranked suggestions to their response shape.
func NewSuggestionDTOs(suggestions []valueobject.Suggestion) []SuggestionDTO {
	out := make([]SuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, SuggestionDTO{
			Candidate:        newTransactionRecordDTO(s.Candidate),
			Confidence:       s.Confidence,
			AmountScore:      s.Breakdown.Amount,
			DateScore:        s.Breakdown.Date,
			DescriptionScore: s.Breakdown.Description,
		})
	}
	return out
}

func newTransactionRecordDTO(rec entity.TransactionRecord) TransactionRecordDTO {
	return TransactionRecordDTO{
		ID:          rec.ID,
		Amount:      rec.Amount.StringFixed(2),
		Date:        rec.OccurredOn.Format(time.DateOnly),
		Description: rec.Description,
		Side:        string(rec.Side),
	}
}

func newTransactionRecordDTOs(records []entity.TransactionRecord) []TransactionRecordDTO {
	out := make([]TransactionRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, newTransactionRecordDTO(rec))
	}
	return out
}

func newDroppedRecordDTOs(dropped []reconciliation.NormalizationError) []DroppedRecordDTO {
	if len(dropped) == 0 {
		return nil
	}
	out := make([]DroppedRecordDTO, 0, len(dropped))
	for _, d := range dropped {
		out = append(out, DroppedRecordDTO{Index: d.Index, Field: d.Field, Reason: d.Err.Error()})
	}
	return out
}
