package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

const (
	maxChatMessages    = 50
	maxChatMessageRune = 4000
)

// ChatAssistant answers the last user message of a conversation. Implementations live in
// pkg/utils (external HTTP service, OpenAI, Gemini).
type ChatAssistant interface {
	Reply(ctx context.Context, conversation []request_models.ChatMessage) (string, error)
}

type ChatServiceInterface interface {
	Reply(ctx context.Context, req request_models.ChatRequest) (*resp.ChatResponse, error)
}

type ChatService struct {
	assistant ChatAssistant
	timeout   time.Duration
	log       *logger.Logger
}

// NewChatService accepts a nil assistant; every call then fails with ErrChatUnavailable.
func NewChatService(assistant ChatAssistant, timeout time.Duration, log *logger.Logger) ChatServiceInterface {
	return &ChatService{
		assistant: assistant,
		timeout:   timeout,
		log:       log.With("service", "ChatService"),
	}
}

func (s *ChatService) Reply(ctx context.Context, req request_models.ChatRequest) (*resp.ChatResponse, error) {
	conversation, err := normalizeConversation(req.Conversation)
	if err != nil {
		return nil, err
	}
	if s.assistant == nil {
		return nil, utils.ErrChatUnavailable
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	reply, err := s.assistant.Reply(ctx, conversation)
	if err != nil {
		s.log.Error("Chat reply failed", "messages", len(conversation), "error", err)
		return nil, utils.ErrChatFailed
	}
	if strings.TrimSpace(reply) == "" {
		s.log.Error("Chat reply was empty", "messages", len(conversation))
		return nil, utils.ErrChatFailed
	}

	s.log.Info("Chat reply generated", "messages", len(conversation), "duration_ms", time.Since(started).Milliseconds())
	return &resp.ChatResponse{Reply: reply}, nil
}

// normalizeConversation lower-cases roles, folds "bot" into "assistant" and requires the
// conversation to end with a user turn.
func normalizeConversation(in []request_models.ChatMessage) ([]request_models.ChatMessage, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: conversation must not be empty", utils.ErrInvalidInput)
	}
	if len(in) > maxChatMessages {
		return nil, fmt.Errorf("%w: conversation has more than %d messages", utils.ErrInvalidInput, maxChatMessages)
	}

	out := make([]request_models.ChatMessage, 0, len(in))
	for i, m := range in {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		switch role {
		case request_models.ChatRoleUser, request_models.ChatRoleAssistant:
		case request_models.ChatRoleBot:
			role = request_models.ChatRoleAssistant
		default:
			return nil, fmt.Errorf("%w: conversation[%d].role must be user or bot", utils.ErrInvalidInput, i)
		}
		text := strings.TrimSpace(m.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: conversation[%d].text is empty", utils.ErrInvalidInput, i)
		}
		if utf8.RuneCountInString(text) > maxChatMessageRune {
			return nil, fmt.Errorf("%w: conversation[%d].text is longer than %d characters", utils.ErrInvalidInput, i, maxChatMessageRune)
		}
		out = append(out, request_models.ChatMessage{Role: role, Text: text})
	}

	if out[len(out)-1].Role != request_models.ChatRoleUser {
		return nil, fmt.Errorf("%w: the last message must come from the user", utils.ErrInvalidInput)
	}
	return out, nil
}
