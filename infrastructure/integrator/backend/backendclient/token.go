package backendclient

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// StorageKeyToken é a chave do armazenamento local que guarda o bearer token
const StorageKeyToken = "authToken"

// KeyValueStore é o armazenamento local onde o token é mantido
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// TokenStore lê e limpa o bearer token anexado às chamadas
type TokenStore struct {
	mu      sync.Mutex
	storage KeyValueStore
}

func NewTokenStore(storage KeyValueStore) *TokenStore {
	return &TokenStore{storage: storage}
}

// Token retorna o token salvo, ou vazio quando não existe
func (t *TokenStore) Token() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	token, ok, err := t.storage.Get(StorageKeyToken)
	if err != nil {
		logrus.WithError(err).Warn("backendclient: failed to read auth token")
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

func (t *TokenStore) SetToken(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.storage.Set(StorageKeyToken, token)
}

// Clear remove o token após uma resposta 401; não há renovação
func (t *TokenStore) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.storage.Remove(StorageKeyToken); err != nil {
		logrus.WithError(err).Warn("backendclient: failed to clear auth token")
	}
}
