package mapping

import (
	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

// ToDomainCategory converts a wire Category to a domain Category. The wire
// type encoding "1"/"2" decodes to expense/income; unknown values pass
// through untouched.
func ToDomainCategory(w wire.Category) domain.Category {
	typ := domain.CategoryType(w.Type)
	switch w.Type {
	case wire.CategoryTypeExpense:
		typ = domain.CategoryExpense
	case wire.CategoryTypeIncome:
		typ = domain.CategoryIncome
	}
	return domain.Category{
		ID:        w.ID,
		AccountID: w.AccountID,
		Name:      w.Name,
		Type:      typ,
		Count:     w.Count,
	}
}

// ToWireCategory converts a domain Category to its wire shape.
func ToWireCategory(d domain.Category) wire.Category {
	typ := string(d.Type)
	switch d.Type {
	case domain.CategoryExpense:
		typ = wire.CategoryTypeExpense
	case domain.CategoryIncome:
		typ = wire.CategoryTypeIncome
	}
	return wire.Category{
		ID:        d.ID,
		AccountID: d.AccountID,
		Name:      d.Name,
		Type:      typ,
		Count:     d.Count,
	}
}

func ToDomainCategorySlice(ws []wire.Category) []domain.Category {
	ds := make([]domain.Category, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainCategory(w)
	}
	return ds
}

func ToDomainLabel(w wire.Label) domain.Label {
	return domain.Label{
		ID:        w.ID,
		AccountID: w.AccountID,
		Name:      w.Name,
		Count:     w.Count,
	}
}

func ToWireLabel(d domain.Label) wire.Label {
	return wire.Label{
		ID:        d.ID,
		AccountID: d.AccountID,
		Name:      d.Name,
		Count:     d.Count,
	}
}

func ToDomainLabelSlice(ws []wire.Label) []domain.Label {
	ds := make([]domain.Label, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainLabel(w)
	}
	return ds
}

func ToWireLabelSlice(ds []domain.Label) []wire.Label {
	ws := make([]wire.Label, len(ds))
	for i, d := range ds {
		ws[i] = ToWireLabel(d)
	}
	return ws
}
