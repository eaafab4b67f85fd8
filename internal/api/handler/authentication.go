package handler

import (
	"net/http"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/authenticating"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/digisolai/digisol.ai-sub002/pkg/middleware"
	"github.com/sirupsen/logrus"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			logrus.WithError(err).Warn("auth: login failed")
			writeServiceError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário autenticado altere a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req domain.ChangePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.CurrentPassword == "" || req.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha atual e nova senha são obrigatórias", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), userClaims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			logrus.WithError(err).WithField("user_id", userClaims.UserID).Warn("auth: change password failed")
			writeServiceError(w, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CreateUser cadastra um usuário ativo; o campo password chega em texto e é gravado como hash
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if !decodeJSON(w, r, &user) {
			return
		}

		if user.RoleID != 0 && (user.RoleID < domain.RoleAdmin || user.RoleID > domain.RoleMarketer) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "role_id inválido", nil)
			return
		}
		user.Active = true

		created, err := service.CreateUser(r.Context(), &user)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar usuário")
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id": created.ID,
			"role_id": created.RoleID,
		}).Info("auth: user created")
		writeJSON(w, http.StatusCreated, created)
	}
}
