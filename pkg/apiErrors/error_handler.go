package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos para o cliente
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004"
	ErrMethodNotAllowed    = "VAL_005"

	// Campanhas
	ErrCampaignNotFound   = "CMP_001"
	ErrInvalidTransition  = "CMP_002" // Transição de status não permitida
	ErrInvalidCampaignDef = "CMP_003"

	// Contatos
	ErrContactNotFound       = "CNT_001"
	ErrInvalidMergeSelection = "CNT_002"

	// Tema da marca
	ErrInvalidTheme     = "THM_001"
	ErrThemePersistence = "THM_002"

	// Chat com agentes de IA
	ErrUnknownPersona = "CHT_001"

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrRateLimited       = "SRV_005" // Limite de requisições do serviço externo
	ErrUpstreamAuth      = "SRV_006" // Serviço externo recusou as credenciais
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrCampaignNotFound:      http.StatusNotFound,
	ErrInvalidTransition:     http.StatusConflict,
	ErrInvalidCampaignDef:    http.StatusBadRequest,
	ErrContactNotFound:       http.StatusNotFound,
	ErrInvalidMergeSelection: http.StatusBadRequest,
	ErrInvalidTheme:          http.StatusBadRequest,
	ErrThemePersistence:      http.StatusInternalServerError,
	ErrUnknownPersona:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrUpstreamAuth:          http.StatusUnauthorized,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado a um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("apiErrors: failed to encode error response")
	}
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
