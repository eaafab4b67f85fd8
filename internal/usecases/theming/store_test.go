package theming

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/storage"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	failSets bool
	sets     int
}

func newMemoryStore(values map[string]string) *memoryStore {
	if values == nil {
		values = map[string]string{}
	}
	return &memoryStore{values: values}
}

func (m *memoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSets {
		return errors.New("disk full")
	}
	m.sets++
	m.values[key] = value
	return nil
}

var fixedNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func newTestStore(kv KeyValueStore, document Document) *Store {
	store := NewStore(kv, document)
	store.now = func() time.Time { return fixedNow }
	return store
}

func TestStore_RoundTripThroughFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")

	kv, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	store := newTestStore(kv, NewStyleDocument(""))
	store.Load()

	_, err = store.Update(map[string]any{"primary_color": "#ABCDEF"})
	require.NoError(t, err)

	// recarga simulada: novo armazenamento e nova store sobre o mesmo arquivo
	reloadedKV, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	reloaded := newTestStore(reloadedKV, NewStyleDocument(""))
	theme := reloaded.Load()

	assert.Equal(t, "#ABCDEF", theme.PrimaryColor)
	assert.Equal(t, domain.DefaultAccentColor, theme.AccentColor)

	theme, err = reloaded.Reset()
	require.NoError(t, err)
	assert.Equal(t, "#1F4287", theme.PrimaryColor)

	again, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "#1F4287", newTestStore(again, nil).Load().PrimaryColor)
}

func TestStore_LoadFallsBackToLegacyKeys(t *testing.T) {
	kv := newMemoryStore(map[string]string{
		"brandPrimaryColor": "#000000",
		"brandName":         "Acme",
	})

	theme := newTestStore(kv, nil).Load()

	assert.Equal(t, "#000000", theme.PrimaryColor)
	assert.Equal(t, "Acme", theme.BrandName)
	assert.Equal(t, domain.DefaultAccentColor, theme.AccentColor)
	assert.Equal(t, domain.DefaultBodyFont, theme.BodyFont)
	assert.Zero(t, kv.sets, "chaves legadas nunca são gravadas")
}

func TestStore_LoadIgnoresCorruptCompositeRecord(t *testing.T) {
	kv := newMemoryStore(map[string]string{
		StorageKeyTheme:   "{broken",
		"brandHeaderFont": "Lato",
	})

	theme := newTestStore(kv, nil).Load()

	assert.Equal(t, "Lato", theme.HeaderFont)
	assert.Equal(t, domain.DefaultPrimaryColor, theme.PrimaryColor)
}

func TestStore_LoadDefaults(t *testing.T) {
	theme := newTestStore(newMemoryStore(nil), nil).Load()

	assert.Equal(t, domain.DefaultBrandTheme(), theme)
}

func TestStore_CompositeRecordWinsOverLegacy(t *testing.T) {
	kv := newMemoryStore(map[string]string{
		StorageKeyTheme:     `{"primary_color":"#111111","brand_name":"Nova"}`,
		"brandPrimaryColor": "#222222",
	})

	theme := newTestStore(kv, nil).Load()

	assert.Equal(t, "#111111", theme.PrimaryColor)
	assert.Equal(t, "Nova", theme.BrandName)
	assert.Equal(t, domain.DefaultHeaderFont, theme.HeaderFont)
}

func TestStore_UpdateAppliesAndBroadcasts(t *testing.T) {
	document := NewStyleDocument("Marketing Dashboard")
	store := newTestStore(newMemoryStore(nil), document)
	store.Load()

	var events []domain.ThemeEvent
	unsubscribe := store.Subscribe(func(event domain.ThemeEvent) {
		events = append(events, event)
	})

	theme, err := store.Update(map[string]any{
		"accent_color": "#00FF00",
		"brand_name":   "Acme",
		"logo_url":     "https://cdn.acme.com/logo.png",
	})
	require.NoError(t, err)

	assert.Equal(t, fixedNow, theme.UpdatedAt)
	require.Len(t, events, 1)
	assert.Equal(t, domain.ThemeUpdatedEvent, events[0].Name)
	assert.Equal(t, theme, events[0].Theme)

	accent, _ := document.Property(CSSVarAccentColor)
	assert.Equal(t, "#00FF00", accent)
	assert.Equal(t, "Acme | DigiSol.AI | Marketing Dashboard", document.Title())
	assert.Equal(t, "https://cdn.acme.com/logo.png", document.Favicon())

	unsubscribe()
	unsubscribe()

	_, err = store.Reset()
	require.NoError(t, err)
	assert.Len(t, events, 1, "assinante removido não recebe eventos")
}

func TestStore_UpdateRejectsInvalidInputWithoutMutation(t *testing.T) {
	tests := []struct {
		name    string
		partial map[string]any
	}{
		{name: "cor malformada", partial: map[string]any{"primary_color": "blue"}},
		{name: "campo desconhecido", partial: map[string]any{"secondary_color": "#FFFFFF"}},
		{name: "tipo errado", partial: map[string]any{"accent_color": 123}},
		{name: "nome vazio", partial: map[string]any{"brand_name": "  "}},
		{name: "logo sem esquema", partial: map[string]any{"logo_url": "javascript:alert(1)"}},
		{name: "fonte com caracteres proibidos", partial: map[string]any{"body_font": "Arial; color: red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemoryStore(nil)
			store := newTestStore(kv, nil)
			before := store.Load()

			notified := false
			store.Subscribe(func(domain.ThemeEvent) { notified = true })

			_, err := store.Update(tt.partial)

			require.ErrorIs(t, err, ErrInvalidTheme)
			var themeErr *ThemeError
			require.True(t, errors.As(err, &themeErr))
			assert.Equal(t, apiErrors.ErrInvalidTheme, themeErr.Code)

			assert.Equal(t, before, store.Current())
			assert.Zero(t, kv.sets)
			assert.False(t, notified)
		})
	}
}

func TestStore_UpdateIgnoresUpdatedAtFromClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")

	kv, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	store := newTestStore(kv, nil)
	store.Load()

	partial := map[string]any{"primary_color": "#ABCDEF", "updated_at": "2026-01-01T00:00:00Z"}
	theme, err := store.Update(partial)
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", theme.PrimaryColor)
	assert.True(t, fixedNow.Equal(theme.UpdatedAt))
	assert.Contains(t, partial, "updated_at")

	reloaded, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", newTestStore(reloaded, nil).Load().PrimaryColor)
}

func TestStore_PersistenceFailureKeepsState(t *testing.T) {
	kv := newMemoryStore(nil)
	store := newTestStore(kv, nil)
	before := store.Load()

	kv.failSets = true

	_, err := store.Update(map[string]any{"primary_color": "#ABCDEF"})

	assert.ErrorIs(t, err, ErrThemePersistence)
	assert.Equal(t, before, store.Current())
}

func TestStore_HandleStorageChange(t *testing.T) {
	kv := newMemoryStore(nil)
	store := newTestStore(kv, nil)
	store.Load()

	var received []domain.BrandTheme
	store.Subscribe(func(event domain.ThemeEvent) { received = append(received, event.Theme) })

	kv.values[StorageKeyTheme] = `{"primary_color":"#123456","accent_color":"#FFC300","header_font":"Montserrat","body_font":"Open Sans","brand_name":"Externa"}`

	store.HandleStorageChange([]string{"authToken"})
	assert.Empty(t, received)

	store.HandleStorageChange([]string{StorageKeyTheme})
	require.Len(t, received, 1)
	assert.Equal(t, "Externa", received[0].BrandName)
	assert.Equal(t, "#123456", store.Current().PrimaryColor)
}
