package theming

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrThemePersistence = errors.New("failed to persist theme")
)

// ThemeError é um erro com contexto adicional para o tema da marca
type ThemeError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo inválido (quando aplicável)
	Details string
}

func (e *ThemeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

func NewThemeError(err error, code string, field string, details string) *ThemeError {
	return &ThemeError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
