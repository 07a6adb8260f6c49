package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rfonline/rfclient/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := storage.NewMemory()

	_, ok := st.Get(storage.TokenKey)
	assert.False(t, ok)

	require.NoError(t, st.Set(storage.TokenKey, "abc"))
	v, ok := st.Get(storage.TokenKey)
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	st.Delete(storage.TokenKey)
	_, ok = st.Get(storage.TokenKey)
	assert.False(t, ok)
}

func TestMemoryStoreCrossTabNotifications(t *testing.T) {
	tabA := storage.NewMemory()
	tabB := tabA.Tab()

	var aKeys, bKeys []string
	unsubA := tabA.Subscribe(func(key string) { aKeys = append(aKeys, key) })
	defer unsubA()
	unsubB := tabB.Subscribe(func(key string) { bKeys = append(bKeys, key) })
	defer unsubB()

	require.NoError(t, tabA.Set(storage.TokenKey, "tok"))

	// The writing tab never hears its own mutation.
	assert.Empty(t, aKeys)
	assert.Equal(t, []string{storage.TokenKey}, bKeys)

	// Both handles see the same state.
	v, ok := tabB.Get(storage.TokenKey)
	require.True(t, ok)
	assert.Equal(t, "tok", v)
}

func TestMemoryStoreUnsubscribeStopsDelivery(t *testing.T) {
	tabA := storage.NewMemory()
	tabB := tabA.Tab()

	calls := 0
	unsub := tabB.Subscribe(func(string) { calls++ })
	require.NoError(t, tabA.Set(storage.RememberKey, "true"))
	unsub()
	require.NoError(t, tabA.Set(storage.RememberKey, "false"))

	assert.Equal(t, 1, calls)
}

func TestMemoryStoreDeleteOfMissingKeyIsSilent(t *testing.T) {
	tabA := storage.NewMemory()
	tabB := tabA.Tab()

	calls := 0
	unsub := tabB.Subscribe(func(string) { calls++ })
	defer unsub()

	tabA.Delete(storage.TokenKey)
	assert.Zero(t, calls)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	st := storage.NewFile(path)

	require.NoError(t, st.Set(storage.TokenKey, "tok"))
	require.NoError(t, st.Set(storage.RememberKey, "true"))

	// A fresh store over the same file sees the persisted state.
	again := storage.NewFile(path)
	v, ok := again.Get(storage.TokenKey)
	require.True(t, ok)
	assert.Equal(t, "tok", v)

	again.Delete(storage.TokenKey)
	_, ok = st.Get(storage.TokenKey)
	assert.False(t, ok)
}

func TestFileStoreCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, storage.NewFile(path).Set(storage.TokenKey, "tok"))

	require.NoError(t, writeFile(path, "{not json"))

	_, ok := storage.NewFile(path).Get(storage.TokenKey)
	assert.False(t, ok)
}

func TestFileStoreSharedBus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	bus := storage.NewBus()
	a := storage.NewFileWithBus(path, bus)
	b := storage.NewFileWithBus(path, bus)

	var keys []string
	unsub := b.Subscribe(func(key string) { keys = append(keys, key) })
	defer unsub()

	require.NoError(t, a.Set(storage.TokenKey, "tok"))
	assert.Equal(t, []string{storage.TokenKey}, keys)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
