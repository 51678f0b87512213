package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
)

type OpenAIItineraryClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIItineraryClient(apiKey, model string) *OpenAIItineraryClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIItineraryClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIItineraryClient) GenerateItinerary(ctx context.Context, prompt request_models.ItineraryPrompt) (*response_models.ItineraryProposal, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planner that answers with a single JSON object.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildItineraryPrompt(prompt),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}
	return DecodeItinerary([]byte(resp.Choices[0].Message.Content))
}
