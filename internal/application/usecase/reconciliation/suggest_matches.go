// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"sort"

	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// SuggestMatchesInput represents the input for a single-record suggestion
// call. Candidates is a caller-supplied pool, typically the unmatched records
// of the opposite side.
type SuggestMatchesInput struct {
	Target     entity.TransactionRecord
	Candidates []entity.TransactionRecord
}

// SuggestMatchesUseCase ranks candidates for one unresolved transaction for
// human review. It is stateless and safe to call repeatedly: it scores
// without consuming anything and never mutates the batch matcher's index.
type SuggestMatchesUseCase struct {
	cfg valueobject.MatchConfig
}

// NewSuggestMatchesUseCase creates a new SuggestMatchesUseCase instance.
// Configuration errors are fatal here, before any scoring.
func NewSuggestMatchesUseCase(cfg valueobject.MatchConfig) (*SuggestMatchesUseCase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SuggestMatchesUseCase{cfg: cfg}, nil
}

// Execute scores every candidate against the target and returns the top-K
// above the advisory threshold, sorted descending by confidence with the
// full sub-score breakdown attached. The suggestion threshold is looser than
// the matcher's acceptance threshold: these are proposals for a human, not
// automatic commits, so near misses outside the hard amount window still
// rank (the amount sub-score keeps them low).
func (uc *SuggestMatchesUseCase) Execute(input SuggestMatchesInput) []valueobject.Suggestion {
	suggestions := make([]valueobject.Suggestion, 0, len(input.Candidates))

	for i := range input.Candidates {
		candidate := &input.Candidates[i]
		breakdown, composite := scorePair(uc.cfg, &input.Target, candidate)
		if composite < uc.cfg.SuggestionThreshold {
			continue
		}
		suggestions = append(suggestions, valueobject.Suggestion{
			Candidate:  *candidate,
			Confidence: composite,
			Breakdown:  breakdown,
		})
	}

	// Stable sort keeps pool order on equal confidence, so repeated calls
	// return identical rankings.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > uc.cfg.SuggestionTopK {
		suggestions = suggestions[:uc.cfg.SuggestionTopK]
	}
	return suggestions
}
