package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

func TestCategoryTypeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		wireType string
		domain   domain.CategoryType
	}{
		{"expense", wire.CategoryTypeExpense, domain.CategoryExpense},
		{"income", wire.CategoryTypeIncome, domain.CategoryIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := wire.Category{ID: 7, AccountID: 3, Name: "Office", Type: tt.wireType, Count: 4}

			d := mapping.ToDomainCategory(w)
			assert.Equal(t, tt.domain, d.Type)

			back := mapping.ToWireCategory(d)
			assert.Equal(t, w, back, "encode(decode(x)) must be lossless")
		})
	}
}

func TestCategoryUnknownTypePassesThrough(t *testing.T) {
	w := wire.Category{ID: 1, Name: "Weird", Type: "9"}

	d := mapping.ToDomainCategory(w)
	back := mapping.ToWireCategory(d)

	assert.Equal(t, "9", back.Type)
}

func TestLabelSliceRoundTrip(t *testing.T) {
	ws := []wire.Label{
		{ID: 1, AccountID: 2, Name: "travel", Count: 3},
		{ID: 2, AccountID: 2, Name: "meals"},
	}

	ds := mapping.ToDomainLabelSlice(ws)
	assert.Len(t, ds, 2)
	assert.Equal(t, "travel", ds[0].Name)

	assert.Equal(t, ws, mapping.ToWireLabelSlice(ds))
}

func TestNilSlicesDecodeEmpty(t *testing.T) {
	assert.NotNil(t, mapping.ToDomainCategorySlice(nil))
	assert.Empty(t, mapping.ToDomainCategorySlice(nil))
}
