package contacting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMergeSelection = errors.New("select at least 2, and a master among them")
	ErrContactNotFound       = errors.New("contact not found")

	ErrDatabaseOperation = errors.New("database operation error")
)

// ContactError é um erro com contexto adicional para contatos
type ContactError struct {
	Err        error    // Erro base
	Code       string   // Código de erro para API
	ContactIDs []string // IDs envolvidos (quando aplicável)
	Details    string
}

func (e *ContactError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ContactError) Unwrap() error {
	return e.Err
}

func NewContactError(err error, code string, contactIDs []string, details string) *ContactError {
	return &ContactError{
		Err:        err,
		Code:       code,
		ContactIDs: contactIDs,
		Details:    details,
	}
}
