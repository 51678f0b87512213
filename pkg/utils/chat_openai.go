package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"globetrotter/internal/models/request_models"
)

const chatSystemPrompt = "You are a helpful travel planning assistant. " +
	"Answer the user's latest message with a single concise reply, in plain text."

// OpenAIChatClient answers travel questions with a chat completion over the whole conversation.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) *OpenAIChatClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIChatClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAIChatClient) Reply(ctx context.Context, conversation []request_models.ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conversation)+1)
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt})
	for _, m := range conversation {
		role := openai.ChatMessageRoleUser
		if m.Role != request_models.ChatRoleUser {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
