package backendclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	backenddomain "github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Post(ctx context.Context, path string, body any, out any) error
	Do(ctx context.Context, method, path string, body any, out any) error
	AgentChat(ctx context.Context, req backenddomain.AgentChatRequest) (*backenddomain.AgentChatResponse, error)
}

type BackendClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     *TokenStore
}

func NewClient(cfg *config.Config, tokens *TokenStore) Client {
	return &BackendClient{
		BaseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: cfg.Backend.Timeout},
		Tokens:     tokens,
	}
}

func (c *BackendClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Do executa uma única chamada; falhas não são repetidas
func (c *BackendClient) Do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("backendclient: request failed")
		return fmt.Errorf("%w: %v", ErrCommunication, err)
	}
	defer resp.Body.Close()

	respBody, err := c.HandleResponse(resp)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("backendclient: error response")
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logrus.WithError(err).WithField("path", path).Error("backendclient: invalid response body")
		return fmt.Errorf("erro ao deserializar resposta: %w", err)
	}

	return nil
}

// HandleResponse lê o corpo e classifica respostas de erro
func (c *BackendClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler resposta: %v", ErrCommunication, err)
	}

	if resp.StatusCode < http.StatusBadRequest {
		return body, nil
	}

	if resp.StatusCode == http.StatusUnauthorized && c.Tokens != nil {
		c.Tokens.Clear()
	}

	return nil, classify(resp.StatusCode, errorDetail(body))
}

func (c *BackendClient) AgentChat(ctx context.Context, req backenddomain.AgentChatRequest) (*backenddomain.AgentChatResponse, error) {
	var resp backenddomain.AgentChatResponse
	if err := c.Post(ctx, "/ai-agents/chat/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func errorDetail(body []byte) string {
	var errResp backenddomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if text := errResp.Text(); text != "" {
			return text
		}
	}
	return strings.TrimSpace(string(body))
}
