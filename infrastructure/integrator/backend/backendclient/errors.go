package backendclient

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Classes de falha da API remota, cada uma com sua mensagem para o usuário
var (
	ErrUnauthorized       = errors.New("backend: not authenticated")
	ErrRateLimited        = errors.New("backend: rate limited")
	ErrServiceUnavailable = errors.New("backend: service unavailable")
	ErrServer             = errors.New("backend: server error")
	ErrRequestFailed      = errors.New("backend: request failed")
	ErrCommunication      = errors.New("backend: communication failure")
)

// ResponseError carrega o status e o detalhe devolvidos pela API
type ResponseError struct {
	Err        error
	StatusCode int
	Detail     string
}

func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Err.Error(), e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Err.Error(), e.StatusCode)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// classify converte um status HTTP de erro na classe correspondente
func classify(status int, detail string) error {
	var class error
	switch {
	case status == http.StatusUnauthorized:
		class = ErrUnauthorized
	case status == http.StatusTooManyRequests:
		class = ErrRateLimited
	case status == http.StatusServiceUnavailable:
		class = ErrServiceUnavailable
	case status >= http.StatusInternalServerError:
		class = ErrServer
	default:
		class = ErrRequestFailed
	}

	return &ResponseError{
		Err:        class,
		StatusCode: status,
		Detail:     detail,
	}
}

// UserMessage traduz uma falha da API na mensagem exibida ao usuário
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, ErrServiceUnavailable):
		return "The service is temporarily unavailable. Please try again later."
	case errors.Is(err, ErrServer):
		return "Something went wrong on our side. Please try again."
	case errors.Is(err, ErrCommunication):
		return "Could not reach the server. Check your connection and try again."
	case errors.Is(err, ErrRequestFailed):
		var respErr *ResponseError
		if errors.As(err, &respErr) && respErr.Detail != "" {
			return respErr.Detail
		}
		return "The request could not be completed."
	default:
		return "An unexpected error occurred."
	}
}
