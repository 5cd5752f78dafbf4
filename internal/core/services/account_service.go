package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/booksclient/internal/core/domain"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
	"github.com/ledgerline/booksclient/pkg/localstore"
)

// AccountService is the account-scoped context: it owns the persisted
// active-account id, a cached copy of the active account, and the change
// broadcast other components subscribe to.
type AccountService struct {
	BaseService
	api      *rest.Client
	store    *localstore.Store
	track    *utils.Track
	validate *validator.Validate

	mu      sync.RWMutex
	active  domain.Account
	subs    map[int]func(uint)
	nextSub int
}

func NewAccountService(api *rest.Client, store *localstore.Store, track *utils.Track) *AccountService {
	return &AccountService{
		api:      api,
		store:    store,
		track:    track,
		validate: newValidator(),
		subs:     map[int]func(uint){},
	}
}

// ActiveAccountID reads the persisted account id. It is read here, at call
// time, by every scoped request; holding the id across a switch would leak
// data between accounts.
func (s *AccountService) ActiveAccountID() uint {
	id, _ := strconv.ParseUint(s.store.Get(localstore.KeyAccountID), 10, 32)
	return uint(id)
}

// ActiveAccount returns the last-known active account without refetching.
func (s *AccountService) ActiveAccount() domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActiveAccount re-fetches the account for the currently stored id and
// updates the cached value.
func (s *AccountService) SetActiveAccount(ctx context.Context) error {
	acct, err := s.GetAccount(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.active = acct
	s.mu.Unlock()
	return nil
}

// GetAccount fetches the active account from the API.
func (s *AccountService) GetAccount(ctx context.Context) (domain.Account, error) {
	var w wire.Account
	path := fmt.Sprintf("/api/v3/%d/account", s.ActiveAccountID())
	if err := s.api.Get(ctx, path, nil, &w); err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(w), nil
}

// SwitchAccount persists the new id, refreshes the cached account, and
// broadcasts the change to all subscribers.
func (s *AccountService) SwitchAccount(ctx context.Context, accountID uint) error {
	if err := s.store.Set(localstore.KeyAccountID, strconv.FormatUint(uint64(accountID), 10)); err != nil {
		return err
	}

	fetchErr := s.SetActiveAccount(ctx)
	if fetchErr != nil {
		s.LogError(ctx, fetchErr, "Failed to refresh account after switch",
			slog.Uint64("account_id", uint64(accountID)))
	}

	s.broadcast(accountID)
	return fetchErr
}

// SubscribeAccountChange registers fn for account-change broadcasts and
// returns its unsubscribe func.
func (s *AccountService) SubscribeAccountChange(fn func(accountID uint)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *AccountService) broadcast(accountID uint) {
	s.mu.RLock()
	fns := make([]func(uint), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	// Outside the lock so a subscriber may unsubscribe from its callback.
	for _, fn := range fns {
		fn(accountID)
	}
}

// UpdateAccount saves account settings and refreshes the cached copy.
func (s *AccountService) UpdateAccount(ctx context.Context, acct domain.Account) (domain.Account, error) {
	accountID := s.ActiveAccountID()
	acct.ID = accountID

	w := mapping.ToWireAccount(acct)
	if err := checkStruct(s.validate, w); err != nil {
		return domain.Account{}, err
	}

	var resp wire.Account
	path := fmt.Sprintf("/api/v3/%d/account", accountID)
	if err := s.api.Put(ctx, path, w, &resp); err != nil {
		return domain.Account{}, err
	}

	updated := mapping.ToDomainAccount(resp)
	s.mu.Lock()
	s.active = updated
	s.mu.Unlock()

	s.track.Event(accountID, "account-update", nil)
	return updated, nil
}

// ClearAccount deletes all business data in the active account.
func (s *AccountService) ClearAccount(ctx context.Context) error {
	accountID := s.ActiveAccountID()
	path := fmt.Sprintf("/api/v3/%d/account/clear", accountID)
	if err := s.api.Post(ctx, path, struct{}{}, nil); err != nil {
		return err
	}
	s.track.Event(accountID, "account-clear", nil)
	return nil
}

// DeleteAccount closes the active account permanently.
func (s *AccountService) DeleteAccount(ctx context.Context) error {
	accountID := s.ActiveAccountID()
	path := fmt.Sprintf("/api/v3/%d/account", accountID)
	if err := s.api.Delete(ctx, path); err != nil {
		return err
	}
	s.track.Event(accountID, "account-delete", nil)
	return nil
}

// NewAccount adds another account to the current login and returns it.
func (s *AccountService) NewAccount(ctx context.Context, name string) (domain.Account, error) {
	accountID := s.ActiveAccountID()
	var resp wire.Account
	path := fmt.Sprintf("/api/v3/%d/account/new", accountID)
	if err := s.api.Post(ctx, path, map[string]string{"name": name}, &resp); err != nil {
		return domain.Account{}, err
	}
	s.track.Event(accountID, "account-add", nil)
	return mapping.ToDomainAccount(resp), nil
}

// ChangeOwner transfers ownership of the active account.
func (s *AccountService) ChangeOwner(ctx context.Context, userID uint) error {
	accountID := s.ActiveAccountID()
	path := fmt.Sprintf("/api/v3/%d/account/owner", accountID)
	return s.api.Put(ctx, path, map[string]uint{"owner_id": userID}, nil)
}
