package reconciliation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledger-recon/engine/internal/domain/entity"
)

func TestNormalizeRecords(t *testing.T) {
	t.Run("parses well-formed rows", func(t *testing.T) {
		raw := []entity.RawRecord{
			{ID: "stmt-1", Amount: "100.00", Date: "2024-01-15", Description: "ACME Corp"},
			{ID: "stmt-2", Amount: "-42.50", Date: "2024-01-16", Description: "Refund"},
		}

		result := NormalizeRecords(raw, entity.SideBank)

		require.Len(t, result.Records, 2)
		assert.Empty(t, result.Dropped)

		first := result.Records[0]
		assert.Equal(t, "stmt-1", first.ID)
		assert.True(t, first.Amount.Equal(decimal.RequireFromString("100.00")))
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.OccurredOn)
		assert.Equal(t, "ACME Corp", first.Description)
		assert.Equal(t, entity.SideBank, first.Side)
	})

	t.Run("accepts every supported date layout", func(t *testing.T) {
		raw := []entity.RawRecord{
			{ID: "a", Amount: "1.00", Date: "2024-01-15"},
			{ID: "b", Amount: "1.00", Date: "2024-01-15T10:30:00Z"},
			{ID: "c", Amount: "1.00", Date: "2024-01-15 10:30:00"},
		}

		result := NormalizeRecords(raw, entity.SideBook)

		assert.Len(t, result.Records, 3)
		assert.Empty(t, result.Dropped)
	})

	t.Run("drops rows with unparseable amounts", func(t *testing.T) {
		raw := []entity.RawRecord{
			{ID: "good", Amount: "10.00", Date: "2024-01-15"},
			{ID: "bad", Amount: "ten dollars", Date: "2024-01-15"},
		}

		result := NormalizeRecords(raw, entity.SideBank)

		require.Len(t, result.Records, 1)
		assert.Equal(t, "good", result.Records[0].ID)

		require.Len(t, result.Dropped, 1)
		assert.Equal(t, 1, result.Dropped[0].Index)
		assert.Equal(t, "amount", result.Dropped[0].Field)
	})

	t.Run("drops rows with unparseable dates", func(t *testing.T) {
		raw := []entity.RawRecord{
			{ID: "bad", Amount: "10.00", Date: "15/01/2024"},
		}

		result := NormalizeRecords(raw, entity.SideBank)

		assert.Empty(t, result.Records)
		require.Len(t, result.Dropped, 1)
		assert.Equal(t, "date", result.Dropped[0].Field)
		assert.Contains(t, result.Dropped[0].Error(), "invalid date")
	})

	t.Run("a dropped row never aborts the batch", func(t *testing.T) {
		raw := []entity.RawRecord{
			{ID: "a", Amount: "broken", Date: "2024-01-15"},
			{ID: "b", Amount: "10.00", Date: "2024-01-15"},
			{ID: "c", Amount: "10.00", Date: "broken"},
			{ID: "d", Amount: "10.00", Date: "2024-01-15"},
		}

		result := NormalizeRecords(raw, entity.SideBook)

		assert.Len(t, result.Records, 2)
		assert.Len(t, result.Dropped, 2)
	})

	t.Run("assigns synthetic ids by input position", func(t *testing.T) {
		raw := []entity.RawRecord{
			{Amount: "10.00", Date: "2024-01-15"},
			{ID: "explicit", Amount: "20.00", Date: "2024-01-15"},
			{Amount: "30.00", Date: "2024-01-15"},
		}

		result := NormalizeRecords(raw, entity.SideBook)

		require.Len(t, result.Records, 3)
		assert.Equal(t, "book-0", result.Records[0].ID)
		assert.Equal(t, "explicit", result.Records[1].ID)
		assert.Equal(t, "book-2", result.Records[2].ID)
	})

	t.Run("synthetic ids keep the raw position when earlier rows drop", func(t *testing.T) {
		raw := []entity.RawRecord{
			{Amount: "broken", Date: "2024-01-15"},
			{Amount: "20.00", Date: "2024-01-15"},
		}

		result := NormalizeRecords(raw, entity.SideBank)

		require.Len(t, result.Records, 1)
		assert.Equal(t, "bank-1", result.Records[0].ID)
	})
}
