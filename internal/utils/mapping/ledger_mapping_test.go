package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

func TestToDomainLedgerDecodesDates(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{"rfc3339", "2025-03-14T10:30:00Z", time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)},
		{"date only", "2025-03-14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "last tuesday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mapping.ToDomainLedger(wire.Ledger{Date: tt.date})
			assert.True(t, tt.want.Equal(d.Date), "got %v", d.Date)
		})
	}
}

func TestToDomainLedgerAmountAndSign(t *testing.T) {
	d := mapping.ToDomainLedger(wire.Ledger{ID: 9, Amount: -42.50})

	require.True(t, d.Amount.Equal(decimal.NewFromFloat(-42.50)))
	assert.Equal(t, domain.CategoryExpense, d.EntryType())

	d = mapping.ToDomainLedger(wire.Ledger{Amount: 12})
	assert.Equal(t, domain.CategoryIncome, d.EntryType())
}

func TestToWireLedgerLiftsReferenceIDs(t *testing.T) {
	d := domain.Ledger{
		ID:       4,
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromFloat(100.25),
		Contact:  domain.Contact{ID: 11, Name: "Acme"},
		Category: domain.Category{ID: 22, Name: "Sales", Type: domain.CategoryIncome},
		Labels:   []domain.Label{{ID: 5, Name: "q2"}},
	}

	w := mapping.ToWireLedger(d)

	assert.Equal(t, uint(11), w.ContactID)
	assert.Equal(t, uint(22), w.CategoryID)
	assert.Equal(t, "2025-06-01T00:00:00Z", w.Date)
	assert.Equal(t, 100.25, w.Amount)
	assert.Equal(t, wire.CategoryTypeIncome, w.Category.Type)
	require.Len(t, w.Labels, 1)
	assert.Equal(t, "q2", w.Labels[0].Name)
}

func TestLedgerSummaryDecodes(t *testing.T) {
	w := wire.LedgerSummary{
		Years:      []wire.YearCount{{Year: 2025, Count: 40}, {Year: 2024, Count: 12}},
		Labels:     []wire.FacetCount{{ID: 1, Name: "travel", Count: 7}},
		Categories: []wire.FacetCount{{ID: 2, Name: "Meals", Count: 3}},
	}

	s := mapping.ToDomainLedgerSummary(w)

	require.Len(t, s.Years, 2)
	assert.Equal(t, 2025, s.Years[0].Year)
	require.Len(t, s.Labels, 1)
	assert.Equal(t, "travel", s.Labels[0].Name)
	require.Len(t, s.Categories, 1)
	assert.Equal(t, 3, s.Categories[0].Count)
}
