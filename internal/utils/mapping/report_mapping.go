package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

func ToDomainPnlCurrentYear(w wire.PnlCurrentYear) domain.PnlCurrentYear {
	return domain.PnlCurrentYear{
		Year:  w.Year,
		Value: decimal.NewFromFloat(w.Value),
	}
}

func ToDomainPnlSlice(ws []wire.Pnl) []domain.Pnl {
	ds := make([]domain.Pnl, len(ws))
	for i, w := range ws {
		ds[i] = domain.Pnl{
			Date:    parseWireTime(w.Date),
			Income:  decimal.NewFromFloat(w.Income),
			Expense: decimal.NewFromFloat(w.Expense),
			Profit:  decimal.NewFromFloat(w.Profit),
		}
	}
	return ds
}

func ToDomainNameAmountSlice(ws []wire.NameAmount) []domain.NameAmount {
	ds := make([]domain.NameAmount, len(ws))
	for i, w := range ws {
		ds[i] = domain.NameAmount{
			Name:   w.Name,
			Amount: decimal.NewFromFloat(w.Amount),
		}
	}
	return ds
}
