package services

import (
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/pkg/localstore"
)

// NewServiceContainer wires every service against one API client and one
// state store. The account service doubles as the scope every other scoped
// service reads its account id from.
func NewServiceContainer(api *rest.Client, store *localstore.Store, track *utils.Track, baseURL, clientID string) *ports.ServiceContainer {
	account := NewAccountService(api, store, track)

	return &ports.ServiceContainer{
		Auth:      NewAuthService(api, store, baseURL, clientID),
		User:      NewUserService(api, account, track),
		Account:   account,
		Ledger:    NewLedgerService(api, account, track),
		Contact:   NewContactService(api, account, track),
		Category:  NewCategoryService(api, account, track),
		Label:     NewLabelService(api, account, track),
		Activity:  NewActivityService(api, account),
		SnapClerk: NewSnapClerkService(api, account, track),
		File:      NewFileService(api, account),
		Billing:   NewBillingService(api, account),
		Report:    NewReportService(api, account),
	}
}
