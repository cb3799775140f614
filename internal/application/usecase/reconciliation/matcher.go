// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"runtime"
	"sync"

	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// parallelScoreThreshold is the candidate count above which scoring for one
// bank record fans out to a bounded worker pool. Below it the goroutine
// overhead outweighs the scoring work.
const parallelScoreThreshold = 64

// exactEpsilon absorbs float rounding when classifying a perfect composite.
const exactEpsilon = 1e-9

// matcher runs the greedy assignment over one batch. It is deliberately
// greedy and order-dependent rather than a globally optimal bipartite
// assignment: amount+date+description collisions are rare, and determinism
// matters more than optimality for an audit-facing tool.
type matcher struct {
	cfg   valueobject.MatchConfig
	index candidateIndex
}

// scoredEntry pairs a candidate with its composite score. eligible is false
// when the amount difference is outside the hard tolerance window, in which
// case the candidate is never considered regardless of composite score.
type scoredEntry struct {
	entry     *bookEntry
	breakdown valueobject.ScoreBreakdown
	composite float64
	eligible  bool
}

// run processes bank records in input order. Every bank record lands in
// exactly one of matches or unmatchedBank; the matcher raises no errors.
func (m *matcher) run(bank []entity.TransactionRecord) ([]valueobject.Match, []entity.TransactionRecord) {
	matches := make([]valueobject.Match, 0, len(bank))
	unmatchedBank := make([]entity.TransactionRecord, 0)

	for i := range bank {
		rec := &bank[i]
		candidates := m.index.Lookup(rec.Amount)
		best := m.selectBest(rec, candidates)
		if best == nil || best.composite < m.cfg.AcceptanceThreshold {
			unmatchedBank = append(unmatchedBank, *rec)
			continue
		}

		m.index.Consume(best.entry)
		matches = append(matches, valueobject.Match{
			Bank:      *rec,
			Book:      best.entry.record,
			Composite: best.composite,
			Kind:      matchKind(best.composite),
		})
	}

	return matches, unmatchedBank
}

// selectBest scores all candidates and picks the strictly highest composite,
// breaking ties by earliest book insertion order. Scoring may run on a worker
// pool; selection happens on the calling goroutine so the outcome is
// identical to sequential execution.
func (m *matcher) selectBest(rec *entity.TransactionRecord, candidates []*bookEntry) *scoredEntry {
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]scoredEntry, len(candidates))
	score := func(i int) {
		e := candidates[i]
		scored[i] = scoredEntry{entry: e, eligible: m.cfg.IsWithinTolerance(rec.Amount, e.record.Amount)}
		if scored[i].eligible {
			scored[i].breakdown, scored[i].composite = scorePair(m.cfg, rec, &e.record)
		}
	}

	if len(candidates) >= parallelScoreThreshold {
		var wg sync.WaitGroup
		sem := make(chan struct{}, runtime.GOMAXPROCS(0))
		for i := range candidates {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				score(i)
				<-sem
			}(i)
		}
		wg.Wait()
	} else {
		for i := range candidates {
			score(i)
		}
	}

	var best *scoredEntry
	for i := range scored {
		s := &scored[i]
		if !s.eligible {
			continue
		}
		if best == nil || s.composite > best.composite ||
			(s.composite == best.composite && s.entry.ord < best.entry.ord) {
			best = s
		}
	}
	return best
}

// matchKind classifies a committed match: a perfect composite is an exact
// match, everything else is fuzzy.
func matchKind(composite float64) valueobject.MatchKind {
	if composite >= 1-exactEpsilon {
		return valueobject.MatchKindExact
	}
	return valueobject.MatchKindFuzzy
}
