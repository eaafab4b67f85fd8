package domain

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Persona é um nome de produto para o mesmo endpoint genérico de chat
type Persona struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Agent string `json:"agent"`
	Focus string `json:"focus"`
}

type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

type ChatResponse struct {
	ConversationID string        `json:"conversation_id"`
	Persona        string        `json:"persona"`
	Reply          ChatMessage   `json:"reply"`
	History        []ChatMessage `json:"history"`
}
