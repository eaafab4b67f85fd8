package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignIDRequired = errors.New("campaign ID is required")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidCampaign    = errors.New("invalid campaign definition")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating campaign ID")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
