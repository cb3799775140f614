package reconciliation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ledger-recon/engine/internal/domain/entity"
	"github.com/ledger-recon/engine/internal/domain/valueobject"
)

func TestAmountScore(t *testing.T) {
	cfg := valueobject.DefaultMatchConfig()

	tests := []struct {
		name string
		bank string
		book string
		want float64
	}{
		{"identical amounts score full", "100.00", "100.00", 1},
		{"difference at tolerance scores full", "100.00", "100.01", 1},
		{"difference at five times tolerance scores zero", "100.00", "100.05", 0},
		{"difference beyond five times tolerance scores zero", "100.00", "150.00", 0},
		{"difference mid band earns partial credit", "100.00", "100.03", 0.5},
		{"sign-sensitive difference", "100.00", "-100.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := decimal.RequireFromString(tt.bank)
			book := decimal.RequireFromString(tt.book)
			assert.InDelta(t, tt.want, amountScore(cfg, bank, book), 1e-9)
		})
	}

	t.Run("zero tolerance means exact only", func(t *testing.T) {
		strict := cfg
		strict.AmountToleranceAbsolute = decimal.Zero
		assert.Equal(t, 1.0, amountScore(strict, decimal.NewFromInt(5), decimal.NewFromInt(5)))
		assert.Equal(t, 0.0, amountScore(strict, decimal.NewFromInt(5), decimal.RequireFromString("5.01")))
	})
}

func TestDateScore(t *testing.T) {
	cfg := valueobject.DefaultMatchConfig() // 3 day tolerance
	base := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want float64
	}{
		{"same day scores full", 0, 1},
		{"one day off", 1, 1 - 1.0/3.0},
		{"two days off", 2, 1 - 2.0/3.0},
		{"at tolerance scores zero", 3, 0},
		{"beyond tolerance scores zero", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateScore(cfg, base, base.AddDate(0, 0, tt.days))
			assert.InDelta(t, tt.want, got, 1e-9)

			// Symmetric in either direction.
			assert.InDelta(t, got, dateScore(cfg, base.AddDate(0, 0, tt.days), base), 1e-9)
		})
	}

	t.Run("zero tolerance only accepts same day", func(t *testing.T) {
		strict := cfg
		strict.DateToleranceDays = 0
		assert.Equal(t, 1.0, dateScore(strict, base, base))
		assert.Equal(t, 0.0, dateScore(strict, base, base.AddDate(0, 0, 1)))
	})
}

func TestDescriptionScore(t *testing.T) {
	tests := []struct {
		name string
		bank string
		book string
		want float64
	}{
		{"identical", "ACME Corp", "ACME Corp", 1},
		{"case insensitive", "acme corp", "ACME CORP", 1},
		{"both empty", "", "", 0},
		{"one empty", "ACME Corp", "", 0},
		{"disjoint strings stay low", "zzzz", "qqqq", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, descriptionScore(tt.bank, tt.book), 1e-9)
		})
	}

	t.Run("close variants score high", func(t *testing.T) {
		// "acme corp" -> "acme corporation" is 7 edits over 25 runes total.
		got := descriptionScore("ACME Corp", "ACME Corporation")
		assert.InDelta(t, 0.72, got, 1e-9)
	})
}

func TestScorePair(t *testing.T) {
	cfg := valueobject.DefaultMatchConfig()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	bank := entity.TransactionRecord{
		ID:          "bank-1",
		Amount:      decimal.RequireFromString("100.00"),
		OccurredOn:  day,
		Description: "ACME Corp",
		Side:        entity.SideBank,
	}
	book := entity.TransactionRecord{
		ID:          "book-1",
		Amount:      decimal.RequireFromString("100.00"),
		OccurredOn:  day,
		Description: "ACME Corporation",
		Side:        entity.SideBook,
	}

	breakdown, composite := scorePair(cfg, &bank, &book)

	assert.Equal(t, 1.0, breakdown.Amount)
	assert.Equal(t, 1.0, breakdown.Date)
	assert.Greater(t, breakdown.Description, 0.7)
	assert.GreaterOrEqual(t, composite, cfg.AcceptanceThreshold)
	assert.LessOrEqual(t, composite, 1.0)

	// Composite is the configured convex combination of the sub-scores.
	want := cfg.DescriptionWeight*breakdown.Description +
		cfg.AmountWeight*breakdown.Amount +
		cfg.DateWeight*breakdown.Date
	assert.InDelta(t, want, composite, 1e-12)
}
