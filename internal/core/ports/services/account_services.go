package services

import (
	"context"

	"github.com/ledgerline/booksclient/internal/core/domain"
)

// AccountScope yields the account id that scopes API calls. Implementations
// must return the id active at the time of the call, never a captured copy.
type AccountScope interface {
	ActiveAccountID() uint
}

// AccountChangeSource broadcasts active-account switches. Subscribe returns
// an unsubscribe func that must be called when the subscriber is torn down.
// Delivery order across subscribers is unspecified.
type AccountChangeSource interface {
	SubscribeAccountChange(fn func(accountID uint)) (unsubscribe func())
}

// AccountReaderSvc defines read operations on the active account.
type AccountReaderSvc interface {
	// ActiveAccount returns the last-known active account without refetching.
	ActiveAccount() domain.Account

	// SetActiveAccount re-fetches the account for the currently stored id
	// and updates the cached value.
	SetActiveAccount(ctx context.Context) error

	// GetAccount fetches the active account from the API.
	GetAccount(ctx context.Context) (domain.Account, error)
}

// AccountWriterSvc defines mutations on the active account.
type AccountWriterSvc interface {
	// SwitchAccount persists the new id, refreshes the cached account, and
	// broadcasts the change.
	SwitchAccount(ctx context.Context, accountID uint) error

	// UpdateAccount saves account settings.
	UpdateAccount(ctx context.Context, acct domain.Account) (domain.Account, error)

	// ClearAccount deletes all business data in the account.
	ClearAccount(ctx context.Context) error

	// DeleteAccount closes the account permanently.
	DeleteAccount(ctx context.Context) error

	// NewAccount adds another account to the current login.
	NewAccount(ctx context.Context, name string) (domain.Account, error)

	// ChangeOwner transfers account ownership to another member.
	ChangeOwner(ctx context.Context, userID uint) error
}

// AccountSvcFacade combines the account-scoped context with account CRUD.
type AccountSvcFacade interface {
	AccountScope
	AccountChangeSource
	AccountReaderSvc
	AccountWriterSvc
}
