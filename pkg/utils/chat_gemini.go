package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"globetrotter/internal/models/request_models"
)

type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(ctx context.Context, apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatClient{client: client, model: model}, nil
}

// Reply replays all but the last message as history and sends the last one.
func (c *GeminiChatClient) Reply(ctx context.Context, conversation []request_models.ChatMessage) (string, error) {
	if len(conversation) == 0 {
		return "", fmt.Errorf("empty conversation")
	}
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatSystemPrompt)}}
	m.SetTemperature(0.7)

	cs := m.StartChat()
	cs.History = geminiHistory(conversation[:len(conversation)-1])

	resp, err := cs.SendMessage(ctx, genai.Text(conversation[len(conversation)-1].Text))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text, err := geminiText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// geminiHistory maps conversation turns to Gemini's "user" and "model" roles.
func geminiHistory(conversation []request_models.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(conversation))
	for _, m := range conversation {
		role := "model"
		if m.Role == request_models.ChatRoleUser {
			role = "user"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Text)}})
	}
	return history
}

func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
