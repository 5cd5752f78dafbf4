package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/wire"
)

func ToDomainAccount(w wire.Account) domain.Account {
	return domain.Account{
		ID:       w.ID,
		OwnerID:  w.OwnerID,
		Name:     w.Name,
		Currency: w.Currency,
		Locale:   w.Locale,
	}
}

func ToWireAccount(d domain.Account) wire.Account {
	return wire.Account{
		ID:       d.ID,
		OwnerID:  d.OwnerID,
		Name:     d.Name,
		Currency: d.Currency,
		Locale:   d.Locale,
	}
}

func ToDomainUser(w wire.User) domain.User {
	u := domain.User{
		ID:           w.ID,
		FirstName:    w.FirstName,
		LastName:     w.LastName,
		Email:        w.Email,
		LastActivity: parseWireTime(w.LastActivity),
	}
	if len(w.Accounts) > 0 {
		u.Accounts = make([]domain.Account, len(w.Accounts))
		for i, a := range w.Accounts {
			u.Accounts[i] = ToDomainAccount(a)
		}
	}
	return u
}

func ToDomainUserSlice(ws []wire.User) []domain.User {
	ds := make([]domain.User, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainUser(w)
	}
	return ds
}

func ToDomainBilling(w wire.Billing) domain.Billing {
	return domain.Billing{
		ID:               w.ID,
		PaymentProcessor: w.PaymentProcessor,
		Subscription:     w.Subscription,
		Status:           w.Status,
		TrialExpire:      parseWireTime(w.TrialExpire),
	}
}

func ToDomainInvoice(w wire.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:            w.ID,
		Date:          parseWireTime(w.Date),
		Amount:        decimal.NewFromFloat(w.Amount),
		TransactionID: w.TransactionID,
		PaymentMethod: w.PaymentMethod,
		InvoiceURL:    w.InvoiceURL,
	}
}

func ToDomainInvoiceSlice(ws []wire.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ws))
	for i, w := range ws {
		ds[i] = ToDomainInvoice(w)
	}
	return ds
}
