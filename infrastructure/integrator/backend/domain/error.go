package backenddomain

// ErrorResponse representa o corpo de erro da API de automação de marketing
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text retorna a primeira descrição preenchida do erro
func (e *ErrorResponse) Text() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}
