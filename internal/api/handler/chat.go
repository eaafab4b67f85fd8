package handler

import (
	"net/http"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/chatting"
	"github.com/julienschmidt/httprouter"
)

func ListPersonas(service chatting.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Personas())
	}
}

// SendChatMessage envia a mensagem para a persona; em falha o erro já traz a mensagem para o usuário
func SendChatMessage(service chatting.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		persona := httprouter.ParamsFromContext(r.Context()).ByName("persona")

		var req domain.ChatRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		resp, err := service.Send(r.Context(), persona, req)
		if err != nil {
			writeServiceError(w, err, "Erro ao enviar mensagem")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetChatHistory(service chatting.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		history, err := service.History(params.ByName("persona"), params.ByName("conversation"))
		if err != nil {
			writeServiceError(w, err, "Erro ao consultar conversa")
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}
