package theming

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	StorageKeyTheme = "brandTheme"

	updatedAtKey = "updated_at"

	legacyKeyPrimaryColor = "brandPrimaryColor"
	legacyKeyAccentColor  = "brandAccentColor"
	legacyKeyHeaderFont   = "brandHeaderFont"
	legacyKeyBodyFont     = "brandBodyFont"
	legacyKeyBrandName    = "brandName"
	legacyKeyLogoURL      = "brandLogoUrl"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// KeyValueStore é o armazenamento local onde o tema é persistido
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type Subscriber func(event domain.ThemeEvent)

type ThemeStore interface {
	Load() domain.BrandTheme
	Current() domain.BrandTheme
	Update(partial map[string]any) (domain.BrandTheme, error)
	Replace(theme domain.BrandTheme) (domain.BrandTheme, error)
	Reset() (domain.BrandTheme, error)
	Subscribe(subscriber Subscriber) (unsubscribe func())
	HandleStorageChange(keys []string)
}

type Store struct {
	mu          sync.RWMutex
	storage     KeyValueStore
	document    Document
	theme       domain.BrandTheme
	subscribers map[uint64]Subscriber
	nextID      uint64
	now         func() time.Time
}

func NewStore(storage KeyValueStore, document Document) *Store {
	return &Store{
		storage:     storage,
		document:    document,
		theme:       domain.DefaultBrandTheme(),
		subscribers: make(map[uint64]Subscriber),
		now:         time.Now,
	}
}

// Load lê o tema persistido (registro composto, chaves legadas ou padrão) e o aplica
func (s *Store) Load() domain.BrandTheme {
	s.mu.Lock()
	s.theme = s.readPersisted()
	theme := s.theme
	s.mu.Unlock()

	Apply(s.document, theme)
	return theme
}

func (s *Store) Current() domain.BrandTheme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.theme
}

// Update mescla os campos informados no tema atual. Chaves desconhecidas ou valores
// inválidos são rejeitados sem alterar nada; updated_at é sempre carimbado pelo store.
func (s *Store) Update(partial map[string]any) (domain.BrandTheme, error) {
	fields := make(map[string]any, len(partial))
	for key, value := range partial {
		if key == updatedAtKey {
			continue
		}
		fields[key] = value
	}

	return s.commit(func(current domain.BrandTheme) (domain.BrandTheme, error) {
		next := current

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &next,
			TagName:     "mapstructure",
			ErrorUnused: true,
		})
		if err != nil {
			return current, err
		}

		if err := decoder.Decode(fields); err != nil {
			return current, NewThemeError(ErrInvalidTheme, apiErrors.ErrInvalidTheme, "", err.Error())
		}

		return next, nil
	})
}

// Replace substitui o tema inteiro
func (s *Store) Replace(theme domain.BrandTheme) (domain.BrandTheme, error) {
	return s.commit(func(domain.BrandTheme) (domain.BrandTheme, error) {
		return theme, nil
	})
}

// Reset restaura o tema padrão com a mesma sequência de persistência, aplicação e notificação
func (s *Store) Reset() (domain.BrandTheme, error) {
	return s.commit(func(domain.BrandTheme) (domain.BrandTheme, error) {
		return domain.DefaultBrandTheme(), nil
	})
}

func (s *Store) commit(mutate func(current domain.BrandTheme) (domain.BrandTheme, error)) (domain.BrandTheme, error) {
	s.mu.Lock()

	current := s.theme
	next, err := mutate(current)
	if err != nil {
		s.mu.Unlock()
		return current, err
	}

	next = normalize(next)
	if err := validate(next); err != nil {
		s.mu.Unlock()
		return current, err
	}

	next.UpdatedAt = s.now()

	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Error("theme: failed to persist theme")
		return current, NewThemeError(ErrThemePersistence, apiErrors.ErrThemePersistence, "", err.Error())
	}

	s.theme = next
	s.mu.Unlock()

	Apply(s.document, next)
	s.broadcast(next)

	return next, nil
}

// Subscribe registra um assinante do evento brandThemeUpdated. A função devolvida remove o registro.
func (s *Store) Subscribe(subscriber Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = subscriber

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// HandleStorageChange recarrega o tema quando outro processo altera o armazenamento
func (s *Store) HandleStorageChange(keys []string) {
	relevant := false
	for _, key := range keys {
		if key == StorageKeyTheme || strings.HasPrefix(key, "brand") {
			relevant = true
			break
		}
	}
	if !relevant {
		return
	}

	theme := s.Load()
	logrus.WithField("brand", theme.BrandName).Info("theme: reloaded after external change")
	s.broadcast(theme)
}

func (s *Store) broadcast(theme domain.BrandTheme) {
	s.mu.RLock()
	subscribers := make([]Subscriber, 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	s.mu.RUnlock()

	event := domain.ThemeEvent{Name: domain.ThemeUpdatedEvent, Theme: theme}
	for _, subscriber := range subscribers {
		subscriber(event)
	}
}

func (s *Store) persist(theme domain.BrandTheme) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return s.storage.Set(StorageKeyTheme, string(raw))
}

func (s *Store) readPersisted() domain.BrandTheme {
	theme := domain.DefaultBrandTheme()

	raw, ok, err := s.storage.Get(StorageKeyTheme)
	if err != nil {
		logrus.WithError(err).Warn("theme: failed to read composite record")
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &theme); err == nil {
			return theme
		}
		logrus.WithField("key", StorageKeyTheme).Warn("theme: ignoring unparsable composite record")
		theme = domain.DefaultBrandTheme()
	}

	legacy := []struct {
		key   string
		field *string
	}{
		{legacyKeyPrimaryColor, &theme.PrimaryColor},
		{legacyKeyAccentColor, &theme.AccentColor},
		{legacyKeyHeaderFont, &theme.HeaderFont},
		{legacyKeyBodyFont, &theme.BodyFont},
		{legacyKeyBrandName, &theme.BrandName},
		{legacyKeyLogoURL, &theme.LogoURL},
	}

	for _, entry := range legacy {
		value, ok, err := s.storage.Get(entry.key)
		if err != nil {
			logrus.WithError(err).WithField("key", entry.key).Warn("theme: failed to read legacy key")
			continue
		}
		if ok && value != "" {
			*entry.field = value
		}
	}

	return theme
}

func normalize(theme domain.BrandTheme) domain.BrandTheme {
	theme.PrimaryColor = strings.TrimSpace(theme.PrimaryColor)
	theme.AccentColor = strings.TrimSpace(theme.AccentColor)
	theme.HeaderFont = strings.TrimSpace(theme.HeaderFont)
	theme.BodyFont = strings.TrimSpace(theme.BodyFont)
	theme.BrandName = strings.TrimSpace(theme.BrandName)
	theme.LogoURL = strings.TrimSpace(theme.LogoURL)
	return theme
}

func validate(theme domain.BrandTheme) error {
	colors := map[string]string{
		"primary_color": theme.PrimaryColor,
		"accent_color":  theme.AccentColor,
	}
	for field, value := range colors {
		if !hexColorPattern.MatchString(value) {
			return NewThemeError(ErrInvalidTheme, apiErrors.ErrInvalidTheme, field,
				fmt.Sprintf("%s must be a hex color like #1F4287, got %q", field, value))
		}
	}

	required := map[string]string{
		"header_font": theme.HeaderFont,
		"body_font":   theme.BodyFont,
		"brand_name":  theme.BrandName,
	}
	for field, value := range required {
		if value == "" {
			return NewThemeError(ErrInvalidTheme, apiErrors.ErrInvalidTheme, field, field+" must not be empty")
		}
		if strings.ContainsAny(value, ";{}\"") {
			return NewThemeError(ErrInvalidTheme, apiErrors.ErrInvalidTheme, field, field+" contains forbidden characters")
		}
	}

	if theme.LogoURL != "" {
		parsed, err := url.Parse(theme.LogoURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https" && !strings.HasPrefix(theme.LogoURL, "/")) {
			return NewThemeError(ErrInvalidTheme, apiErrors.ErrInvalidTheme, "logo_url",
				"logo_url must be an http(s) URL or an absolute path")
		}
	}

	return nil
}
