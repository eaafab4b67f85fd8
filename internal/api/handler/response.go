package handler

import (
	"io"
	"net/http"

	"github.com/digisolai/digisol.ai-sub002/internal/usecases/authenticating"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/campaigning"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/chatting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/theming"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Warn("handler: failed to encode response")
	}
}

// decodeJSON lê o corpo limitado a 1MB; JSON malformado vira erro de validação antes de qualquer mutação
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler requisição", nil)
		return false
	}

	if len(body) == 0 {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", err.Error())
		return false
	}

	return true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		authErr     *authenticating.AuthError
		campaignErr *campaigning.CampaignError
		contactErr  *contacting.ContactError
		themeErr    *theming.ThemeError
		chatErr     *chatting.ChatError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.As(err, &campaignErr):
		var details any
		if campaignErr.CampaignID != "" {
			details = map[string]string{"campaign_id": campaignErr.CampaignID}
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
	case errors.As(err, &contactErr):
		var details any
		if len(contactErr.ContactIDs) > 0 {
			details = map[string][]string{"contact_ids": contactErr.ContactIDs}
		}
		apiErrors.WriteError(w, contactErr.Code, contactErr.Error(), details)
	case errors.As(err, &themeErr):
		var details any
		if themeErr.Field != "" {
			details = map[string]string{"field": themeErr.Field}
		}
		apiErrors.WriteError(w, themeErr.Code, themeErr.Error(), details)
	case errors.As(err, &chatErr):
		message := chatErr.Details
		if message == "" {
			message = chatErr.Err.Error()
		}
		apiErrors.WriteError(w, chatErr.Code, message, nil)
	default:
		logrus.WithError(err).Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
