package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient"
	backenddomain "github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/domain"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/storage"
	"github.com/digisolai/digisol.ai-sub002/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// agentChatAuthorization abre o armazenamento como o servidor faz e retorna o header enviado ao backend
func agentChatAuthorization(t *testing.T, storagePath string) string {
	t.Helper()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"ok"}`))
	}))
	t.Cleanup(server.Close)

	fs, err := storage.NewFileStorage(storagePath)
	require.NoError(t, err)

	cfg := &config.Config{Backend: config.Backend{BaseURL: server.URL, Timeout: 5 * time.Second}}
	client := backendclient.NewClient(cfg, backendclient.NewTokenStore(fs))

	_, err = client.AgentChat(context.Background(), backenddomain.AgentChatRequest{Agent: "Catalyst", Message: "oi"})
	require.NoError(t, err)

	return gotAuth
}

func TestAuthToken_SetIsSentOnAgentChat(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "local_storage.json")

	out, err := runCLI(t, "auth", "token", "set", "Bearer tok-123", "--storage", storagePath)
	require.NoError(t, err)
	assert.Contains(t, out, "token stored")

	assert.Equal(t, "Bearer tok-123", agentChatAuthorization(t, storagePath))

	out, err = runCLI(t, "auth", "token", "status", "--storage", storagePath)
	require.NoError(t, err)
	assert.Contains(t, out, "token set")
	assert.NotContains(t, out, "tok-123")

	_, err = runCLI(t, "auth", "token", "clear", "--storage", storagePath)
	require.NoError(t, err)

	assert.Empty(t, agentChatAuthorization(t, storagePath))

	out, err = runCLI(t, "auth", "token", "status", "--storage", storagePath)
	require.NoError(t, err)
	assert.Contains(t, out, "token not set")
}

func TestAuthToken_SetRejectsEmptyToken(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "local_storage.json")

	_, err := runCLI(t, "auth", "token", "set", "  ", "--storage", storagePath)
	assert.ErrorContains(t, err, "must not be empty")

	_, err = runCLI(t, "auth", "token", "set", "--storage", storagePath)
	assert.Error(t, err)
}
