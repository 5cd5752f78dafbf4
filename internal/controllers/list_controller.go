// Package controllers holds the per-screen state machines. A controller
// composes resource services, owns the pagination cursor and active
// filters, and exposes the actions a view calls. Controllers catch service
// errors and surface them as state; they never panic into the render path.
package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/ledgerline/booksclient/internal/apperrors"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/platform/rest"
)

// State is a controller's lifecycle phase.
type State int

const (
	StateInitializing State = iota
	StateLoaded
	StateDisposed
)

// Fetcher loads one page of a screen's list. The account id is read inside
// the service at call time, so a fetch issued after a switch always carries
// the new id.
type Fetcher[T any] func(ctx context.Context, page int) ([]T, rest.Meta, error)

// Saver creates or updates one entity.
type Saver[T any] func(ctx context.Context, item T) (T, error)

// Deleter removes one entity.
type Deleter[T any] func(ctx context.Context, item T) error

// ListConfig wires a ListController to its screen-specific closures. Fetch
// and Source are required; the rest are optional.
type ListConfig[T any] struct {
	Source ports.AccountChangeSource
	Fetch  Fetcher[T]
	Save   Saver[T]
	Delete Deleter[T]

	// Summary refetches the screen's facet counts alongside the list, so
	// sidebar counts never drift from the rows.
	Summary func(ctx context.Context) error

	// ResetFilters restores the screen's filter fields to their defaults.
	// Called on an account switch unless PreserveFiltersOnAccountChange.
	ResetFilters func()
}

type settings struct {
	allowStale      bool
	preserveFilters bool
}

// Option adjusts controller behavior.
type Option func(*settings)

// AllowStaleResponses keeps the legacy last-response-wins behavior: a slow
// response may overwrite a newer one. The default discards any response
// older than the latest issued request.
func AllowStaleResponses(allow bool) Option {
	return func(s *settings) { s.allowStale = allow }
}

// PreserveFiltersOnAccountChange keeps the screen's filters across an
// account switch; only the page resets. Off by default.
func PreserveFiltersOnAccountChange(preserve bool) Option {
	return func(s *settings) { s.preserveFilters = preserve }
}

// ListController is the generic list-screen state holder: one page of
// items, the pagination headers that came with it, the pending-delete
// confirmation, and the last error.
type ListController[T any] struct {
	cfg      ListConfig[T]
	settings settings

	mu          sync.Mutex
	state       State
	lifeCtx     context.Context
	unsubscribe func()

	page  int
	items []T
	meta  rest.Meta

	lastErr       error
	fieldErrors   map[string]string
	pendingDelete *T

	seq     uint64 // latest issued fetch
	applied uint64 // latest applied fetch
}

func NewListController[T any](cfg ListConfig[T], opts ...Option) *ListController[T] {
	c := &ListController[T]{cfg: cfg, page: 1}
	for _, opt := range opts {
		opt(&c.settings)
	}
	return c
}

// Init subscribes to account-change broadcasts and issues the initial
// fetch. ctx bounds every fetch the controller issues on its own behalf,
// including account-change refetches.
func (c *ListController[T]) Init(ctx context.Context) {
	c.mu.Lock()
	c.lifeCtx = ctx
	c.state = StateInitializing
	c.mu.Unlock()

	if c.cfg.Source != nil {
		unsub := c.cfg.Source.SubscribeAccountChange(c.onAccountChange)
		c.mu.Lock()
		c.unsubscribe = unsub
		c.mu.Unlock()
	}

	c.Refresh(ctx)
}

// Dispose unsubscribes from the broadcast and freezes the controller. A
// response arriving after Dispose is discarded.
func (c *ListController[T]) Dispose() {
	c.mu.Lock()
	c.state = StateDisposed
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (c *ListController[T]) onAccountChange(uint) {
	c.mu.Lock()
	if c.state == StateDisposed {
		c.mu.Unlock()
		return
	}
	c.page = 1
	ctx := c.lifeCtx
	c.mu.Unlock()

	if !c.settings.preserveFilters && c.cfg.ResetFilters != nil {
		c.cfg.ResetFilters()
	}
	c.Refresh(ctx)
}

// Refresh re-issues the screen's fetch sequence (summary first when
// configured, then the current page). A failed fetch leaves the previous
// result in place.
func (c *ListController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	if c.state == StateDisposed || c.cfg.Fetch == nil {
		c.mu.Unlock()
		return
	}
	c.seq++
	seq := c.seq
	page := c.page
	c.mu.Unlock()

	if c.cfg.Summary != nil {
		if err := c.cfg.Summary(ctx); err != nil {
			rest.LoggerFromContext(ctx).Error("Summary refetch failed", "error", err.Error())
		}
	}

	items, meta, err := c.cfg.Fetch(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisposed {
		return
	}
	if !c.settings.allowStale && seq < c.seq {
		// A newer request was issued while this one was in flight.
		return
	}
	if err != nil {
		c.lastErr = err
		c.state = StateLoaded
		return
	}
	c.items = items
	c.meta = meta
	c.lastErr = nil
	c.applied = seq
	c.state = StateLoaded
}

// Items returns the current page's rows.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *ListController[T]) Meta() rest.Meta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meta
}

func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *ListController[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the last fetch or mutation error, nil after a success.
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// FieldErrors returns the field-keyed messages of the last failed save,
// nil when the last save succeeded.
func (c *ListController[T]) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors
}

// PageRange returns the selectable page numbers. An empty result set still
// yields [1] so the page selector is never empty.
func (c *ListController[T]) PageRange() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return []int{1}
	}

	count := 1
	if c.meta.Limit > 0 {
		count = (c.meta.NoLimitCount + c.meta.Limit - 1) / c.meta.Limit
		if count < 1 {
			count = 1
		}
	}

	pages := make([]int, count)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// SetPage jumps to a page and refetches.
func (c *ListController[T]) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	c.Refresh(ctx)
}

// NextPage advances one page unless the server flagged this as the last.
func (c *ListController[T]) NextPage(ctx context.Context) {
	c.mu.Lock()
	if c.meta.LastPage {
		c.mu.Unlock()
		return
	}
	page := c.page + 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

func (c *ListController[T]) PrevPage(ctx context.Context) {
	c.mu.Lock()
	page := c.page - 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

// ApplyFilters is what a screen calls after mutating its filter fields:
// back to page 1, then refetch.
func (c *ListController[T]) ApplyFilters(ctx context.Context) {
	c.SetPage(ctx, 1)
}

// ClearFilters restores the screen's filter defaults and refetches from
// page 1.
func (c *ListController[T]) ClearFilters(ctx context.Context) {
	if c.cfg.ResetFilters != nil {
		c.cfg.ResetFilters()
	}
	c.SetPage(ctx, 1)
}

// Save creates or updates an entity and, on success, re-issues the full
// fetch sequence. On failure the current list is untouched and any
// field-keyed validation messages are kept for the view.
func (c *ListController[T]) Save(ctx context.Context, item T) error {
	if c.cfg.Save == nil {
		return errors.New("controller has no save action")
	}

	if _, err := c.cfg.Save(ctx, item); err != nil {
		c.mu.Lock()
		c.lastErr = err
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.fieldErrors = verr.Fields
		}
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.lastErr = nil
	c.fieldErrors = nil
	c.mu.Unlock()

	c.Refresh(ctx)
	return nil
}

// RequestDelete stages an item for deletion pending user confirmation. The
// DELETE is not issued until ConfirmDelete.
func (c *ListController[T]) RequestDelete(item T) {
	c.mu.Lock()
	c.pendingDelete = &item
	c.mu.Unlock()
}

// PendingDelete returns the staged item, if any.
func (c *ListController[T]) PendingDelete() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingDelete == nil {
		var zero T
		return zero, false
	}
	return *c.pendingDelete, true
}

// CancelDelete discards the staged deletion.
func (c *ListController[T]) CancelDelete() {
	c.mu.Lock()
	c.pendingDelete = nil
	c.mu.Unlock()
}

// ConfirmDelete issues the DELETE for the staged item, then re-issues the
// full fetch sequence. A 404 counts as success: the entity is gone either
// way, and the refetch proves it.
func (c *ListController[T]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	item := c.pendingDelete
	c.pendingDelete = nil
	c.mu.Unlock()

	if item == nil || c.cfg.Delete == nil {
		return nil
	}

	if err := c.cfg.Delete(ctx, *item); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	c.Refresh(ctx)
	return nil
}
