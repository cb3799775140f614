// Package error defines domain-specific errors for the reconciliation engine.
package error

import "errors"

// Reconciliation domain errors.
var (
	// ErrWeightsDoNotSumToOne is returned when the configured sub-score weights do not sum to 1.
	ErrWeightsDoNotSumToOne = errors.New("score weights must sum to 1")

	// ErrNegativeTolerance is returned when an amount or date tolerance is negative.
	ErrNegativeTolerance = errors.New("tolerance cannot be negative")

	// ErrInvalidThreshold is returned when a threshold falls outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrThresholdOrder is returned when the suggestion threshold exceeds the acceptance threshold.
	ErrThresholdOrder = errors.New("suggestion threshold cannot exceed acceptance threshold")

	// ErrInvalidTopK is returned when the suggestion top-k is below 1.
	ErrInvalidTopK = errors.New("suggestion top-k must be at least 1")

	// ErrEmptyLedgerPath is returned when a ledger file path is empty.
	ErrEmptyLedgerPath = errors.New("ledger file path cannot be empty")

	// ErrMissingLedgerHeader is returned when a ledger file has no header row.
	ErrMissingLedgerHeader = errors.New("ledger file has no header row")

	// ErrMissingLedgerColumn is returned when a required ledger column is absent.
	ErrMissingLedgerColumn = errors.New("required ledger column is missing")
)

// ReconciliationErrorCode defines error codes for reconciliation errors.
// Format: RCN-XXYYYY where XX is category and YYYY is specific error.
type ReconciliationErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeWeightsDoNotSumToOne ReconciliationErrorCode = "RCN-010001"
	ErrCodeNegativeTolerance    ReconciliationErrorCode = "RCN-010002"
	ErrCodeInvalidThreshold     ReconciliationErrorCode = "RCN-010003"
	ErrCodeThresholdOrder       ReconciliationErrorCode = "RCN-010004"
	ErrCodeInvalidTopK          ReconciliationErrorCode = "RCN-010005"

	// Ledger input errors (02XXXX)
	ErrCodeLedgerRead          ReconciliationErrorCode = "RCN-020001"
	ErrCodeEmptyLedgerPath     ReconciliationErrorCode = "RCN-020002"
	ErrCodeMissingLedgerHeader ReconciliationErrorCode = "RCN-020003"
	ErrCodeMissingLedgerColumn ReconciliationErrorCode = "RCN-020004"
)

// ReconciliationError represents a reconciliation error with code and message.
type ReconciliationError struct {
	Code    ReconciliationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReconciliationError) Unwrap() error {
	return e.Err
}

// NewReconciliationError creates a new ReconciliationError with the given code and message.
func NewReconciliationError(code ReconciliationErrorCode, message string, err error) *ReconciliationError {
	return &ReconciliationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
