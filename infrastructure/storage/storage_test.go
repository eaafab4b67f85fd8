package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "local_storage.json")

	first, err := NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, first.Set("brandTheme", `{"primary_color":"#ABCDEF"}`))
	require.NoError(t, first.Set("authToken", "abc"))
	require.NoError(t, first.Remove("authToken"))
	require.NoError(t, first.Remove("never-set"))

	second, err := NewFileStorage(path)
	require.NoError(t, err)

	value, ok, err := second.Get("brandTheme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"primary_color":"#ABCDEF"}`, value)

	_, ok, err = second.Get("authToken")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{"brandTheme"}, second.Keys())
}

func TestFileStorage_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStorage(path)
	assert.Error(t, err)
}

func TestFileStorage_EmptyFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := NewFileStorage(path)
	require.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestFileStorage_WatchReportsExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")

	store, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("brandName", "DigiSol.AI"))

	changes := make(chan []string, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.Watch(ctx, func(keys []string) { changes <- keys }))
	defer store.Close()

	// escrita própria não é notificada
	require.NoError(t, store.Set("brandName", "Acme"))

	// outro processo grava o arquivo
	require.NoError(t, os.WriteFile(path, []byte(`{"brandName":"Acme","brandTheme":"{}"}`), 0o644))

	select {
	case keys := <-changes:
		assert.Equal(t, []string{"brandTheme"}, keys)
	case <-time.After(5 * time.Second):
		t.Fatal("nenhuma alteração externa foi notificada")
	}

	value, ok, _ := store.Get("brandTheme")
	assert.True(t, ok)
	assert.Equal(t, "{}", value)
}

func TestDiffKeys(t *testing.T) {
	before := map[string]string{"a": "1", "b": "2", "c": "3"}
	after := map[string]string{"a": "1", "b": "20", "d": "4"}

	assert.Equal(t, []string{"b", "c", "d"}, diffKeys(before, after))
}
