package mapping

import (
	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

func ToDomainContact(w wire.Contact) domain.Contact {
	return domain.Contact{
		ID:            w.ID,
		AccountID:     w.AccountID,
		Name:          w.Name,
		FirstName:     w.FirstName,
		LastName:      w.LastName,
		Address:       w.Address,
		City:          w.City,
		State:         w.State,
		Zip:           w.Zip,
		Country:       w.Country,
		Phone:         w.Phone,
		Fax:           w.Fax,
		Website:       w.Website,
		AccountNumber: w.AccountNumber,
		Email:         w.Email,
		Twitter:       w.Twitter,
		Facebook:      w.Facebook,
		Linkedin:      w.Linkedin,
	}
}

func ToWireContact(d domain.Contact) wire.Contact {
	return wire.Contact{
		ID:            d.ID,
		AccountID:     d.AccountID,
		Name:          d.Name,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Address:       d.Address,
		City:          d.City,
		State:         d.State,
		Zip:           d.Zip,
		Country:       d.Country,
		Phone:         d.Phone,
		Fax:           d.Fax,
		Website:       d.Website,
		AccountNumber: d.AccountNumber,
		Email:         d.Email,
		Twitter:       d.Twitter,
		Facebook:      d.Facebook,
		Linkedin:      d.Linkedin,
	}
}

func ToDomainContactSlice(ws []wire.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainContact(w)
	}
	return ds
}
