package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

func ToDomainSnapClerk(w wire.SnapClerk) domain.SnapClerk {
	return domain.SnapClerk{
		ID:          w.ID,
		AccountID:   w.AccountID,
		AddedByID:   w.AddedByID,
		Status:      domain.SnapClerkStatus(w.Status),
		File:        ToDomainFile(w.File),
		LedgerID:    w.LedgerID,
		Amount:      decimal.NewFromFloat(w.Amount),
		Contact:     w.Contact,
		Category:    w.Category,
		Labels:      w.Labels,
		Note:        w.Note,
		Lat:         w.Lat,
		Lon:         w.Lon,
		CreatedAt:   parseWireTime(w.CreatedAt),
		ProcessedAt: parseWireTime(w.ProcessedAt),
	}
}

func ToWireSnapClerk(d domain.SnapClerk) wire.SnapClerk {
	return wire.SnapClerk{
		ID:        d.ID,
		AccountID: d.AccountID,
		AddedByID: d.AddedByID,
		Status:    string(d.Status),
		FileID:    d.File.ID,
		File:      ToWireFile(d.File),
		LedgerID:  d.LedgerID,
		Amount:    d.Amount.InexactFloat64(),
		Contact:   d.Contact,
		Category:  d.Category,
		Labels:    d.Labels,
		Note:      d.Note,
		Lat:       d.Lat,
		Lon:       d.Lon,
	}
}

func ToDomainSnapClerkSlice(ws []wire.SnapClerk) []domain.SnapClerk {
	ds := make([]domain.SnapClerk, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainSnapClerk(w)
	}
	return ds
}

func ToDomainFile(w wire.File) domain.File {
	return domain.File{
		ID:               w.ID,
		AccountID:        w.AccountID,
		Name:             w.Name,
		Type:             w.Type,
		Size:             w.Size,
		URL:              w.URL,
		Thumb600By600URL: w.Thumb600By600URL,
	}
}

func ToWireFile(d domain.File) wire.File {
	return wire.File{
		ID:               d.ID,
		AccountID:        d.AccountID,
		Name:             d.Name,
		Type:             d.Type,
		Size:             d.Size,
		URL:              d.URL,
		Thumb600By600URL: d.Thumb600By600URL,
	}
}

func ToDomainFileSlice(ws []wire.File) []domain.File {
	ds := make([]domain.File, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainFile(w)
	}
	return ds
}

func ToWireFileSlice(ds []domain.File) []wire.File {
	ws := make([]wire.File, len(ds))
	for i, d := range ds {
		ws[i] = ToWireFile(d)
	}
	return ws
}
