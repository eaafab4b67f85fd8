package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const themeEventsKeepAlive = 25 * time.Second

// StylesheetRenderer expõe o tema aplicado como folha de estilo
type StylesheetRenderer interface {
	CSS() string
}

func GetTheme(store theming.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Current())
	}
}

// UpdateTheme aplica uma atualização parcial; campos desconhecidos são rejeitados
func UpdateTheme(store theming.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var partial map[string]any
		if !decodeJSON(w, r, &partial) {
			return
		}

		theme, err := store.Update(partial)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar tema")
			return
		}

		writeJSON(w, http.StatusOK, theme)
	}
}

func ReplaceTheme(store theming.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var theme domain.BrandTheme
		if !decodeJSON(w, r, &theme) {
			return
		}

		updated, err := store.Replace(theme)
		if err != nil {
			writeServiceError(w, err, "Erro ao substituir tema")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func ResetTheme(store theming.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := store.Reset()
		if err != nil {
			writeServiceError(w, err, "Erro ao restaurar tema padrão")
			return
		}

		writeJSON(w, http.StatusOK, theme)
	}
}

func ThemeCSS(document StylesheetRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		if _, err := w.Write([]byte(document.CSS())); err != nil {
			logrus.WithError(err).Warn("theme: failed to write stylesheet")
		}
	}
}

// ThemeEvents transmite cada brandThemeUpdated como server-sent event até o cliente desconectar
func ThemeEvents(store theming.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		events := make(chan domain.ThemeEvent, 8)
		unsubscribe := store.Subscribe(func(event domain.ThemeEvent) {
			select {
			case events <- event:
			default:
				logrus.Warn("theme: slow event subscriber, dropping event")
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		if err := writeThemeEvent(w, domain.ThemeEvent{Name: domain.ThemeUpdatedEvent, Theme: store.Current()}); err != nil {
			return
		}
		flusher.Flush()

		keepAlive := time.NewTicker(themeEventsKeepAlive)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case event := <-events:
				if err := writeThemeEvent(w, event); err != nil {
					logrus.WithError(err).Debug("theme: event stream closed")
					return
				}
				flusher.Flush()
			case <-keepAlive.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeThemeEvent(w http.ResponseWriter, event domain.ThemeEvent) error {
	payload, err := json.Marshal(event.Theme)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
	return err
}
