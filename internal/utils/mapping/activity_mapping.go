package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

// ToDomainActivity converts a wire Activity. Activities are read-only so
// there is no encoder.
func ToDomainActivity(w wire.Activity) domain.Activity {
	return domain.Activity{
		ID:          w.ID,
		AccountID:   w.AccountID,
		UserID:      w.UserID,
		User:        ToDomainUser(w.User),
		Action:      w.Action,
		SubAction:   w.SubAction,
		Name:        w.Name,
		Amount:      decimal.NewFromFloat(w.Amount),
		LedgerID:    w.LedgerID,
		ContactID:   w.ContactID,
		LabelID:     w.LabelID,
		CategoryID:  w.CategoryID,
		SnapClerkID: w.SnapClerkID,
		Message:     w.Message,
		CreatedAt:   parseWireTime(w.CreatedAt),
	}
}

func ToDomainActivitySlice(ws []wire.Activity) []domain.Activity {
	ds := make([]domain.Activity, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainActivity(w)
	}
	return ds
}
