package controllers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/booksclient/internal/apperrors"
	"github.com/ledgerline/booksclient/internal/controllers"
)

func TestDetailLoadAndSave(t *testing.T) {
	ctrl := controllers.NewDetailController(controllers.DetailConfig[row]{
		Fetch: func(ctx context.Context) (row, error) {
			return row{ID: 7, Name: "before"}, nil
		},
		Save: func(ctx context.Context, item row) (row, error) {
			return item, nil
		},
	})
	ctrl.Init(context.Background())

	item, ok := ctrl.Item()
	require.True(t, ok)
	assert.Equal(t, "before", item.Name)

	item.Name = "after"
	require.NoError(t, ctrl.Save(context.Background(), item))

	item, _ = ctrl.Item()
	assert.Equal(t, "after", item.Name)
}

func TestDetailFailedSaveKeepsLoadedCopy(t *testing.T) {
	ctrl := controllers.NewDetailController(controllers.DetailConfig[row]{
		Fetch: func(ctx context.Context) (row, error) {
			return row{ID: 7, Name: "original"}, nil
		},
		Save: func(ctx context.Context, item row) (row, error) {
			return row{}, apperrors.NewValidationError(map[string]string{"name": "too long"})
		},
	})
	ctrl.Init(context.Background())

	err := ctrl.Save(context.Background(), row{ID: 7, Name: "edited"})

	require.Error(t, err)
	item, ok := ctrl.Item()
	require.True(t, ok)
	assert.Equal(t, "original", item.Name)
	assert.Equal(t, "too long", ctrl.FieldErrors()["name"])
}

func TestDetailNotFoundClearsItem(t *testing.T) {
	missing := false
	ctrl := controllers.NewDetailController(controllers.DetailConfig[row]{
		Fetch: func(ctx context.Context) (row, error) {
			if missing {
				return row{}, apperrors.ErrNotFound
			}
			return row{ID: 7}, nil
		},
	})
	ctrl.Init(context.Background())

	_, ok := ctrl.Item()
	require.True(t, ok)

	missing = true
	ctrl.Load(context.Background())

	_, ok = ctrl.Item()
	assert.False(t, ok, "not-found is the empty state, not an error screen")
	assert.ErrorIs(t, ctrl.Err(), apperrors.ErrNotFound)
}

func TestDetailAccountSwitchClearsItem(t *testing.T) {
	source := newFakeSource()
	ctrl := controllers.NewDetailController(controllers.DetailConfig[row]{
		Source: source,
		Fetch: func(ctx context.Context) (row, error) {
			return row{ID: 7}, nil
		},
	})
	ctrl.Init(context.Background())

	source.Broadcast(9)

	_, ok := ctrl.Item()
	assert.False(t, ok, "an entity must not survive an account switch")
}

func TestDetailDeleteConfirmFlow(t *testing.T) {
	deleted := 0
	ctrl := controllers.NewDetailController(controllers.DetailConfig[row]{
		Fetch: func(ctx context.Context) (row, error) {
			return row{ID: 7}, nil
		},
		Delete: func(ctx context.Context, item row) error {
			deleted++
			return nil
		},
	})
	ctrl.Init(context.Background())

	// cancel issues nothing
	ctrl.RequestDelete()
	require.True(t, ctrl.DeletePending())
	ctrl.CancelDelete()
	require.NoError(t, ctrl.ConfirmDelete(context.Background()))
	assert.Equal(t, 0, deleted)

	ctrl.RequestDelete()
	require.NoError(t, ctrl.ConfirmDelete(context.Background()))
	assert.Equal(t, 1, deleted)

	_, ok := ctrl.Item()
	assert.False(t, ok)
}
