package chatting

import (
	"context"
	"strings"
	"sync"
	"time"

	backenddomain "github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/digisolai/digisol.ai-sub002/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AgentClient é o endpoint genérico de chat da API remota
type AgentClient interface {
	AgentChat(ctx context.Context, req backenddomain.AgentChatRequest) (*backenddomain.AgentChatResponse, error)
}

type ChatService interface {
	Personas() []domain.Persona
	Send(ctx context.Context, persona string, req domain.ChatRequest) (*domain.ChatResponse, error)
	History(persona, conversationID string) ([]domain.ChatMessage, error)
}

type conversationKey struct {
	persona string
	id      string
}

// Service mantém as conversas somente em memória
type Service struct {
	client        AgentClient
	mu            sync.Mutex
	conversations map[conversationKey][]domain.ChatMessage
	now           func() time.Time
	generateID    func() (string, error)
}

func NewService(client AgentClient) *Service {
	return &Service{
		client:        client,
		conversations: make(map[conversationKey][]domain.ChatMessage),
		now:           time.Now,
		generateID:    utils.GenerateID,
	}
}

func (s *Service) Personas() []domain.Persona {
	return Personas()
}

// Send adiciona a mensagem do usuário antes da chamada e a remove se a chamada falhar
func (s *Service) Send(ctx context.Context, personaName string, req domain.ChatRequest) (*domain.ChatResponse, error) {
	persona, ok := LookupPersona(personaName)
	if !ok {
		return nil, NewChatError(ErrUnknownPersona, apiErrors.ErrUnknownPersona, personaName, "")
	}

	content := strings.TrimSpace(req.Message)
	if content == "" {
		return nil, NewChatError(ErrEmptyMessage, apiErrors.ErrMissingRequiredData, persona.Slug, "")
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		id, err := s.generateID()
		if err != nil {
			return nil, NewChatError(err, apiErrors.ErrInternalServer, persona.Slug, "erro ao gerar id da conversa")
		}
		conversationID = id
	}

	messageID, err := s.generateID()
	if err != nil {
		return nil, NewChatError(err, apiErrors.ErrInternalServer, persona.Slug, "erro ao gerar id da mensagem")
	}

	key := conversationKey{persona: persona.Slug, id: conversationID}
	userMessage := domain.ChatMessage{
		ID:        messageID,
		Role:      domain.ChatRoleUser,
		Content:   content,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	history := toAgentHistory(s.conversations[key])
	s.conversations[key] = append(s.conversations[key], userMessage)
	s.mu.Unlock()

	resp, err := s.client.AgentChat(ctx, backenddomain.AgentChatRequest{
		Agent:   persona.Agent,
		Message: content,
		History: history,
	})
	if err != nil {
		s.rollback(key, messageID)
		logrus.WithError(err).WithField("persona", persona.Slug).Warn("chatting: agent request failed, message rolled back")
		return nil, newAgentError(err, persona.Slug)
	}

	replyID, err := s.generateID()
	if err != nil {
		s.rollback(key, messageID)
		return nil, NewChatError(err, apiErrors.ErrInternalServer, persona.Slug, "erro ao gerar id da resposta")
	}

	reply := domain.ChatMessage{
		ID:        replyID,
		Role:      domain.ChatRoleAssistant,
		Content:   resp.Reply(),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.conversations[key] = append(s.conversations[key], reply)
	snapshot := append([]domain.ChatMessage(nil), s.conversations[key]...)
	s.mu.Unlock()

	return &domain.ChatResponse{
		ConversationID: conversationID,
		Persona:        persona.Name,
		Reply:          reply,
		History:        snapshot,
	}, nil
}

func (s *Service) History(personaName, conversationID string) ([]domain.ChatMessage, error) {
	persona, ok := LookupPersona(personaName)
	if !ok {
		return nil, NewChatError(ErrUnknownPersona, apiErrors.ErrUnknownPersona, personaName, "")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages, ok := s.conversations[conversationKey{persona: persona.Slug, id: conversationID}]
	if !ok {
		return nil, NewChatError(ErrConversationMissing, apiErrors.ErrInvalidRequest, persona.Slug, conversationID)
	}

	return append([]domain.ChatMessage(nil), messages...), nil
}

func (s *Service) rollback(key conversationKey, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := s.conversations[key]
	for i, m := range messages {
		if m.ID == messageID {
			messages = append(messages[:i:i], messages[i+1:]...)
			break
		}
	}

	if len(messages) == 0 {
		delete(s.conversations, key)
		return
	}
	s.conversations[key] = messages
}

func toAgentHistory(messages []domain.ChatMessage) []backenddomain.AgentChatMessage {
	if len(messages) == 0 {
		return nil
	}
	history := make([]backenddomain.AgentChatMessage, 0, len(messages))
	for _, m := range messages {
		history = append(history, backenddomain.AgentChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return history
}
