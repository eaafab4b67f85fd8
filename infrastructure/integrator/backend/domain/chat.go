package backenddomain

// AgentChatMessage é o formato de histórico aceito pelo endpoint /ai-agents/chat/
type AgentChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AgentChatRequest struct {
	Agent   string             `json:"agent"`
	Message string             `json:"message"`
	History []AgentChatMessage `json:"history,omitempty"`
}

type AgentChatResponse struct {
	Response string `json:"response"`
	Message  string `json:"message,omitempty"`
}

// Reply retorna o texto da resposta do agente
func (r *AgentChatResponse) Reply() string {
	if r.Response != "" {
		return r.Response
	}
	return r.Message
}
