package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
)

// newTestOpenAI points a go-openai client at handler.
func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := openai.DefaultConfig("sk-test")
	conf.BaseURL = srv.URL
	return openai.NewClientWithConfig(conf)
}

// writeCompletion answers a chat completion request with the given message contents as choices.
func writeCompletion(w http.ResponseWriter, contents ...string) {
	choices := make([]map[string]any, 0, len(contents))
	for i, c := range contents {
		choices = append(choices, map[string]any{
			"index":         i,
			"message":       map[string]any{"role": "assistant", "content": c},
			"finish_reason": "stop",
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"model":   "gpt-4o",
		"choices": choices,
	})
}

func parisPrompt() request_models.ItineraryPrompt {
	cost := 22.5
	return request_models.ItineraryPrompt{
		Name:        "Paris",
		Description: "museums",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-03",
		Activities: []response_models.ActivityResponse{
			{ID: "act-louvre", Name: "Louvre", Category: "culture", CityID: "city-paris", Cost: &cost},
		},
	}
}

func TestOpenAIItineraryClient_GenerateItinerary(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := &OpenAIItineraryClient{
		client: newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeCompletion(w, `{"sections":[{"name":"Day 1","start_date":"2025-09-01","end_date":"2025-09-01","activities":[{"activityId":"act-louvre"}]}]}`)
		}),
		model: openai.GPT4o,
	}

	proposal, err := client.GenerateItinerary(context.Background(), parisPrompt())
	require.NoError(t, err)
	require.Len(t, proposal.Sections, 1)
	assert.Equal(t, "act-louvre", *proposal.Sections[0].Activities[0].ActivityID)

	assert.Equal(t, openai.GPT4o, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Contains(t, got.Messages[1].Content, "ID:act-louvre")
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, got.ResponseFormat.Type)
}

func TestOpenAIItineraryClient_NoChoices(t *testing.T) {
	client := &OpenAIItineraryClient{
		client: newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) { writeCompletion(w) }),
		model:  openai.GPT4o,
	}

	_, err := client.GenerateItinerary(context.Background(), parisPrompt())
	assert.ErrorContains(t, err, "no choices")
}

func TestOpenAIItineraryClient_UpstreamError(t *testing.T) {
	client := &OpenAIItineraryClient{
		client: newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
		}),
		model: openai.GPT4o,
	}

	_, err := client.GenerateItinerary(context.Background(), parisPrompt())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "openai: "), err.Error())
}

func TestOpenAIItineraryClient_NotJSON(t *testing.T) {
	client := &OpenAIItineraryClient{
		client: newTestOpenAI(t, func(w http.ResponseWriter, _ *http.Request) { writeCompletion(w, "Sure! Here is your plan.") }),
		model:  openai.GPT4o,
	}

	_, err := client.GenerateItinerary(context.Background(), parisPrompt())
	assert.Error(t, err)
}

func TestGeminiText(t *testing.T) {
	text, err := geminiText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"sections":`), genai.Text(`[]}`)}},
	}}})
	require.NoError(t, err)
	assert.Equal(t, `{"sections":[]}`, text)

	for name, resp := range map[string]*genai.GenerateContentResponse{
		"nil response":  nil,
		"no candidates": {},
		"no content":    {Candidates: []*genai.Candidate{{}}},
		"no parts":      {Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := geminiText(resp)
			assert.ErrorContains(t, err, "no content")
		})
	}
}

func TestBuildItineraryPrompt(t *testing.T) {
	prompt := BuildItineraryPrompt(parisPrompt())

	assert.Contains(t, prompt, "between 2025-09-01 and 2025-09-03 inclusive")
	assert.Contains(t, prompt, "- ID:act-louvre | Name:Louvre | Category:culture | City:city-paris | Cost:22.50")
	assert.Contains(t, prompt, "- Name: Paris")
	assert.Contains(t, prompt, `"activityId"`)
	assert.NotContains(t, prompt, "catalog is empty")

	empty := parisPrompt()
	empty.Activities = nil
	assert.Contains(t, BuildItineraryPrompt(empty), "(catalog is empty, use free-text names)")
}
