package chatting

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient"
	"github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/backendclient/mocks"
	backenddomain "github.com/digisolai/digisol.ai-sub002/infrastructure/integrator/backend/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	svc := NewService(client)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC) }

	seq := 0
	svc.generateID = func() (string, error) {
		seq++
		return fmt.Sprintf("id-%d", seq), nil
	}

	return svc, client
}

func TestLookupPersona(t *testing.T) {
	for _, name := range []string{"Catalyst", "structura", "ICONA", " prospero ", "Automatix", "scriptor", "Metrika", "connecta"} {
		_, ok := LookupPersona(name)
		assert.True(t, ok, name)
	}

	_, ok := LookupPersona("Oracle")
	assert.False(t, ok)
	assert.Len(t, Personas(), 8)
}

func TestService_SendAppendsReply(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().
		AgentChat(gomock.Any(), backenddomain.AgentChatRequest{Agent: "catalyst", Message: "plan a launch"}).
		Return(&backenddomain.AgentChatResponse{Response: "Here is a plan"}, nil)

	resp, err := svc.Send(context.Background(), "Catalyst", domain.ChatRequest{Message: "  plan a launch "})
	require.NoError(t, err)

	assert.Equal(t, "id-1", resp.ConversationID)
	assert.Equal(t, "Catalyst", resp.Persona)
	assert.Equal(t, "Here is a plan", resp.Reply.Content)
	require.Len(t, resp.History, 2)
	assert.Equal(t, domain.ChatRoleUser, resp.History[0].Role)
	assert.Equal(t, "plan a launch", resp.History[0].Content)
	assert.Equal(t, domain.ChatRoleAssistant, resp.History[1].Role)
}

func TestService_SendForwardsHistory(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().AgentChat(gomock.Any(), gomock.Any()).
		Return(&backenddomain.AgentChatResponse{Response: "first"}, nil)
	client.EXPECT().
		AgentChat(gomock.Any(), backenddomain.AgentChatRequest{
			Agent:   "metrika",
			Message: "and now?",
			History: []backenddomain.AgentChatMessage{
				{Role: "user", Content: "hello"},
				{Role: "assistant", Content: "first"},
			},
		}).
		Return(&backenddomain.AgentChatResponse{Message: "second"}, nil)

	first, err := svc.Send(context.Background(), "metrika", domain.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	second, err := svc.Send(context.Background(), "metrika", domain.ChatRequest{ConversationID: first.ConversationID, Message: "and now?"})
	require.NoError(t, err)
	assert.Equal(t, "second", second.Reply.Content)
	assert.Len(t, second.History, 4)
}

func TestService_SendRollsBackOnFailure(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantCode: apiErrors.ErrUpstreamAuth},
		{name: "rate limited", status: http.StatusTooManyRequests, wantCode: apiErrors.ErrRateLimited},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantCode: apiErrors.ErrCommunication},
		{name: "server error", status: http.StatusInternalServerError, wantCode: apiErrors.ErrExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newTestService(t)

			client.EXPECT().AgentChat(gomock.Any(), gomock.Any()).
				Return(&backenddomain.AgentChatResponse{Response: "ok"}, nil)
			first, err := svc.Send(context.Background(), "scriptor", domain.ChatRequest{Message: "draft"})
			require.NoError(t, err)

			backendErr := &backendclient.ResponseError{StatusCode: tt.status}
			switch tt.status {
			case http.StatusUnauthorized:
				backendErr.Err = backendclient.ErrUnauthorized
			case http.StatusTooManyRequests:
				backendErr.Err = backendclient.ErrRateLimited
			case http.StatusServiceUnavailable:
				backendErr.Err = backendclient.ErrServiceUnavailable
			default:
				backendErr.Err = backendclient.ErrServer
			}
			client.EXPECT().AgentChat(gomock.Any(), gomock.Any()).Return(nil, backendErr)

			_, err = svc.Send(context.Background(), "scriptor", domain.ChatRequest{ConversationID: first.ConversationID, Message: "again"})
			require.Error(t, err)

			var chatErr *ChatError
			require.True(t, errors.As(err, &chatErr))
			assert.Equal(t, tt.wantCode, chatErr.Code)
			assert.Equal(t, backendclient.UserMessage(backendErr), chatErr.Details)
			assert.ErrorIs(t, err, ErrAgentRequest)
			assert.ErrorIs(t, err, backendErr.Err)

			history, err := svc.History("scriptor", first.ConversationID)
			require.NoError(t, err)
			assert.Len(t, history, 2)
			assert.Equal(t, "draft", history[0].Content)
		})
	}
}

func TestService_FirstMessageFailureLeavesNoConversation(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().AgentChat(gomock.Any(), gomock.Any()).Return(nil, backendclient.ErrCommunication)

	_, err := svc.Send(context.Background(), "icona", domain.ChatRequest{ConversationID: "c1", Message: "logo ideas"})
	require.Error(t, err)

	_, err = svc.History("icona", "c1")
	assert.ErrorIs(t, err, ErrConversationMissing)
}

func TestService_SendValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Send(context.Background(), "Oracle", domain.ChatRequest{Message: "hi"})
	var chatErr *ChatError
	require.True(t, errors.As(err, &chatErr))
	assert.Equal(t, apiErrors.ErrUnknownPersona, chatErr.Code)

	_, err = svc.Send(context.Background(), "connecta", domain.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
