// Package reconciliation contains the ledger reconciliation use cases.
package reconciliation

import (
	"github.com/shopspring/decimal"

	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

// IndexStrategy selects how book-side candidates are looked up.
type IndexStrategy string

const (
	// StrategyBucketIndex groups book records by quantized amount so lookups
	// cost the local amount density instead of the full book size.
	StrategyBucketIndex IndexStrategy = "bucket"

	// StrategyPairwiseScan checks every live book record per lookup. Kept as
	// a reference strategy for small inputs and equivalence tests.
	StrategyPairwiseScan IndexStrategy = "scan"
)

// bookEntry tracks one book record through a run. ord is the insertion order
// and drives the deterministic tie-break.
type bookEntry struct {
	record   entity.TransactionRecord
	ord      int
	bucket   int64
	consumed bool
}

// candidateIndex abstracts candidate lookup so the bucket index can be
// swapped for a pairwise scan without touching the matcher.
type candidateIndex interface {
	// Lookup returns the live book entries whose amount could be within
	// tolerance of the given bank amount. It may over-approximate; the
	// scorer applies the hard eligibility check.
	Lookup(bankAmount decimal.Decimal) []*bookEntry

	// Consume removes an entry from all future lookups.
	Consume(e *bookEntry)

	// Live returns the still-unconsumed entries in insertion order.
	Live() []*bookEntry
}

var cents = decimal.NewFromInt(100)

// bucketKey quantizes an amount to an integer bucket at cent granularity.
func bucketKey(amount decimal.Decimal) int64 {
	return amount.Mul(cents).Round(0).IntPart()
}

// bucketIndex maps quantized amount buckets to live book entries. Each entry
// sits in exactly one bucket until consumed.
type bucketIndex struct {
	cfg     valueobject.MatchConfig
	entries []*bookEntry
	buckets map[int64][]*bookEntry
}

func newBucketIndex(cfg valueobject.MatchConfig, records []entity.TransactionRecord) *bucketIndex {
	ix := &bucketIndex{
		cfg:     cfg,
		entries: make([]*bookEntry, 0, len(records)),
		buckets: make(map[int64][]*bookEntry, len(records)),
	}
	for i, rec := range records {
		e := &bookEntry{record: rec, ord: i, bucket: bucketKey(rec.Amount)}
		ix.entries = append(ix.entries, e)
		ix.buckets[e.bucket] = append(ix.buckets[e.bucket], e)
	}
	return ix
}

// span computes how many buckets to check on each side of the bank bucket.
// A minimum of one bucket avoids missing matches for small amounts.
func (ix *bucketIndex) span(bankAmount decimal.Decimal) int64 {
	span := ix.cfg.AmountToleranceAbsolute.Mul(cents).Ceil().IntPart()
	if !ix.cfg.AmountTolerancePercent.IsZero() {
		relative := bankAmount.Abs().Mul(ix.cfg.AmountTolerancePercent).Mul(cents).Ceil().IntPart()
		if relative > span {
			span = relative
		}
	}
	if span < 1 {
		span = 1
	}
	return span
}

func (ix *bucketIndex) Lookup(bankAmount decimal.Decimal) []*bookEntry {
	center := bucketKey(bankAmount)
	span := ix.span(bankAmount)

	var candidates []*bookEntry
	for bucket := center - span; bucket <= center+span; bucket++ {
		candidates = append(candidates, ix.buckets[bucket]...)
	}
	return candidates
}

func (ix *bucketIndex) Consume(e *bookEntry) {
	e.consumed = true
	live := ix.buckets[e.bucket][:0]
	for _, other := range ix.buckets[e.bucket] {
		if other != e {
			live = append(live, other)
		}
	}
	if len(live) == 0 {
		delete(ix.buckets, e.bucket)
		return
	}
	ix.buckets[e.bucket] = live
}

func (ix *bucketIndex) Live() []*bookEntry {
	var live []*bookEntry
	for _, e := range ix.entries {
		if !e.consumed {
			live = append(live, e)
		}
	}
	return live
}

// scanIndex is the naive pairwise strategy: every lookup returns all live
// entries and defers filtering to the scorer.
type scanIndex struct {
	entries []*bookEntry
}

func newScanIndex(records []entity.TransactionRecord) *scanIndex {
	ix := &scanIndex{entries: make([]*bookEntry, 0, len(records))}
	for i, rec := range records {
		ix.entries = append(ix.entries, &bookEntry{record: rec, ord: i})
	}
	return ix
}

func (ix *scanIndex) Lookup(decimal.Decimal) []*bookEntry {
	var live []*bookEntry
	for _, e := range ix.entries {
		if !e.consumed {
			live = append(live, e)
		}
	}
	return live
}

func (ix *scanIndex) Consume(e *bookEntry) {
	e.consumed = true
}

func (ix *scanIndex) Live() []*bookEntry {
	var live []*bookEntry
	for _, e := range ix.entries {
		if !e.consumed {
			live = append(live, e)
		}
	}
	return live
}

// newCandidateIndex builds the index for the requested strategy. An empty
// strategy falls back to the bucket index.
func newCandidateIndex(strategy IndexStrategy, cfg valueobject.MatchConfig, records []entity.TransactionRecord) candidateIndex {
	if strategy == StrategyPairwiseScan {
		return newScanIndex(records)
	}
	return newBucketIndex(cfg, records)
}
