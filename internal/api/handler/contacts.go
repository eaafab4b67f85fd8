package handler

import (
	"net/http"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/sirupsen/logrus"
)

func ListContacts(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := service.ListContacts(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar contatos")
			return
		}

		writeJSON(w, http.StatusOK, contacts)
	}
}

func FindDuplicateContacts(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := service.FindDuplicates(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar duplicados")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"groups": groups,
			"total":  len(groups),
		})
	}
}

// PreviewMerge calcula o registro mesclado sem alterar nenhum contato
func PreviewMerge(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MergeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result, err := service.PreviewMerge(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar prévia da mesclagem")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ConfirmMerge(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.MergeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result, err := service.ConfirmMerge(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Erro ao mesclar contatos")
			return
		}

		logrus.WithFields(logrus.Fields{
			"master_id": result.Merged.ID,
			"removed":   len(result.RemovedIDs),
		}).Info("contacts: merge confirmed")

		writeJSON(w, http.StatusOK, result)
	}
}
