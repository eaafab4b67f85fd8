package chatting

import (
	"errors"
	"fmt"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
)

var (
	ErrUnknownPersona      = errors.New("unknown persona")
	ErrEmptyMessage        = errors.New("message is required")
	ErrConversationMissing = errors.New("conversation not found")
	ErrAgentRequest        = errors.New("agent request failed")
)

// ChatError é um erro com contexto adicional para o chat; Details guarda a mensagem exibida ao usuário
type ChatError struct {
	Err     error
	Code    string
	Persona string
	Details string
}

func (e *ChatError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ChatError) Unwrap() error {
	return e.Err
}

func NewChatError(err error, code, persona, details string) *ChatError {
	return &ChatError{
		Err:     err,
		Code:    code,
		Persona: persona,
		Details: details,
	}
}

// newAgentError converte a falha do backend mantendo a classe original na cadeia
func newAgentError(cause error, persona string) *ChatError {
	code := apiErrors.ErrExternalService
	switch {
	case errors.Is(cause, backendclient.ErrUnauthorized):
		code = apiErrors.ErrUpstreamAuth
	case errors.Is(cause, backendclient.ErrRateLimited):
		code = apiErrors.ErrRateLimited
	case errors.Is(cause, backendclient.ErrServiceUnavailable), errors.Is(cause, backendclient.ErrCommunication):
		code = apiErrors.ErrCommunication
	}

	return NewChatError(fmt.Errorf("%w: %w", ErrAgentRequest, cause), code, persona, backendclient.UserMessage(cause))
}
