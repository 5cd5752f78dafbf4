package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

// ToDomainLedger converts a wire Ledger to a domain Ledger.
func ToDomainLedger(w wire.Ledger) domain.Ledger {
	return domain.Ledger{
		ID:        w.ID,
		AccountID: w.AccountID,
		AddedByID: w.AddedByID,
		Date:      parseWireTime(w.Date),
		Amount:    decimal.NewFromFloat(w.Amount),
		Note:      w.Note,
		Contact:   ToDomainContact(w.Contact),
		Category:  ToDomainCategory(w.Category),
		Labels:    ToDomainLabelSlice(w.Labels),
		Files:     ToDomainFileSlice(w.Files),
	}
}

// ToWireLedger converts a domain Ledger to its wire shape.
func ToWireLedger(d domain.Ledger) wire.Ledger {
	return wire.Ledger{
		ID:         d.ID,
		AccountID:  d.AccountID,
		AddedByID:  d.AddedByID,
		ContactID:  d.Contact.ID,
		Date:       formatWireTime(d.Date),
		Amount:     d.Amount.InexactFloat64(),
		CategoryID: d.Category.ID,
		Note:       d.Note,
		Contact:    ToWireContact(d.Contact),
		Category:   ToWireCategory(d.Category),
		Labels:     ToWireLabelSlice(d.Labels),
		Files:      ToWireFileSlice(d.Files),
	}
}

func ToDomainLedgerSlice(ws []wire.Ledger) []domain.Ledger {
	ds := make([]domain.Ledger, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainLedger(w)
	}
	return ds
}

func ToDomainLedgerSummary(w wire.LedgerSummary) domain.LedgerSummary {
	s := domain.LedgerSummary{
		Years:      make([]domain.YearCount, len(w.Years)),
		Labels:     make([]domain.FacetCount, len(w.Labels)),
		Categories: make([]domain.FacetCount, len(w.Categories)),
	}
	for i, y := range w.Years {
		s.Years[i] = domain.YearCount{Year: y.Year, Count: y.Count}
	}
	for i, l := range w.Labels {
		s.Labels[i] = domain.FacetCount{ID: l.ID, Name: l.Name, Count: l.Count}
	}
	for i, c := range w.Categories {
		s.Categories[i] = domain.FacetCount{ID: c.ID, Name: c.Name, Count: c.Count}
	}
	return s
}

func ToDomainPnL(w wire.PnlSummary) domain.PnL {
	return domain.PnL{
		Income:  decimal.NewFromFloat(w.Income),
		Expense: decimal.NewFromFloat(w.Expense),
		Profit:  decimal.NewFromFloat(w.Profit),
	}
}
