package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
)

type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(ctx context.Context, apiKey, model string) (*GeminiItineraryClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiItineraryClient{client: client, model: model}, nil
}

func (c *GeminiItineraryClient) GenerateItinerary(ctx context.Context, prompt request_models.ItineraryPrompt) (*response_models.ItineraryProposal, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)

	resp, err := m.GenerateContent(ctx, genai.Text(BuildItineraryPrompt(prompt)))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	text, err := geminiText(resp)
	if err != nil {
		return nil, err
	}
	return DecodeItinerary([]byte(text))
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}
