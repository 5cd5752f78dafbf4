package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/booksclient/pkg/localstore"
)

func TestSetGetRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := localstore.Open(path)
	require.NoError(t, err)

	assert.Empty(t, store.Get(localstore.KeyAccessToken))

	require.NoError(t, store.Set(localstore.KeyAccessToken, "tok-1"))
	assert.Equal(t, "tok-1", store.Get(localstore.KeyAccessToken))

	require.NoError(t, store.Remove(localstore.KeyAccessToken))
	assert.Empty(t, store.Get(localstore.KeyAccessToken))
}

func TestStateSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(localstore.KeyAccountID, "5"))
	require.NoError(t, store.Set(localstore.KeyUserID, "42"))

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "5", reopened.Get(localstore.KeyAccountID))
	assert.Equal(t, "42", reopened.Get(localstore.KeyUserID))
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")

	store, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := localstore.Open(path)
	assert.Error(t, err)
}

func TestRemoveMissingKeyIsNoOp(t *testing.T) {
	store, err := localstore.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	assert.NoError(t, store.Remove("never-set"))
}
