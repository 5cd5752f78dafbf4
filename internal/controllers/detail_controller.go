package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/ledgerline/booksclient/internal/apperrors"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
)

// DetailConfig wires a DetailController to one entity's load and save
// closures.
type DetailConfig[T any] struct {
	Source ports.AccountChangeSource
	Fetch  func(ctx context.Context) (T, error)
	Save   Saver[T]
	Delete Deleter[T]
}

// DetailController holds one entity for an edit screen. An account switch
// clears the loaded copy instead of refetching: the entity belongs to the
// old account and must not survive the switch.
type DetailController[T any] struct {
	cfg DetailConfig[T]

	mu          sync.Mutex
	state       State
	unsubscribe func()

	item          T
	loaded        bool
	deletePending bool
	lastErr       error
	fieldErrors   map[string]string
}

func NewDetailController[T any](cfg DetailConfig[T]) *DetailController[T] {
	return &DetailController[T]{cfg: cfg}
}

func (c *DetailController[T]) Init(ctx context.Context) {
	c.mu.Lock()
	c.state = StateInitializing
	c.mu.Unlock()

	if c.cfg.Source != nil {
		unsub := c.cfg.Source.SubscribeAccountChange(func(uint) { c.clear() })
		c.mu.Lock()
		c.unsubscribe = unsub
		c.mu.Unlock()
	}

	c.Load(ctx)
}

func (c *DetailController[T]) Dispose() {
	c.mu.Lock()
	c.state = StateDisposed
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (c *DetailController[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.item = zero
	c.loaded = false
}

// Load fetches the entity. A failure leaves any previously loaded copy in
// place; not-found clears it so the view can show its empty state.
func (c *DetailController[T]) Load(ctx context.Context) {
	item, err := c.cfg.Fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisposed {
		return
	}
	if err != nil {
		c.lastErr = err
		if errors.Is(err, apperrors.ErrNotFound) {
			var zero T
			c.item = zero
			c.loaded = false
		}
		c.state = StateLoaded
		return
	}
	c.item = item
	c.loaded = true
	c.lastErr = nil
	c.state = StateLoaded
}

// Item returns the loaded entity and whether one is loaded.
func (c *DetailController[T]) Item() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.item, c.loaded
}

func (c *DetailController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *DetailController[T]) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors
}

// Save submits the edited entity. On success the saved copy replaces the
// loaded one; on failure the loaded copy is untouched and validation
// messages are kept for the view.
func (c *DetailController[T]) Save(ctx context.Context, item T) error {
	if c.cfg.Save == nil {
		return errors.New("controller has no save action")
	}

	saved, err := c.cfg.Save(ctx, item)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.fieldErrors = verr.Fields
		}
		return err
	}
	c.item = saved
	c.loaded = true
	c.lastErr = nil
	c.fieldErrors = nil
	return nil
}

// RequestDelete stages the loaded entity for deletion pending confirmation.
func (c *DetailController[T]) RequestDelete() {
	c.mu.Lock()
	if c.loaded {
		c.deletePending = true
	}
	c.mu.Unlock()
}

func (c *DetailController[T]) DeletePending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deletePending
}

func (c *DetailController[T]) CancelDelete() {
	c.mu.Lock()
	c.deletePending = false
	c.mu.Unlock()
}

// ConfirmDelete issues the DELETE for the loaded entity and clears it on
// success. A 404 counts as success: the entity is gone either way.
func (c *DetailController[T]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if !c.deletePending || !c.loaded || c.cfg.Delete == nil {
		c.deletePending = false
		c.mu.Unlock()
		return nil
	}
	item := c.item
	c.deletePending = false
	c.mu.Unlock()

	if err := c.cfg.Delete(ctx, item); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	c.clear()
	return nil
}
