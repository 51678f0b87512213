package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
)

const maxItineraryBody = 4 << 20

// HTTPItineraryClient calls an external itinerary service that speaks the
// {name, description, start_date, end_date, activities} -> {sections} contract.
type HTTPItineraryClient struct {
	Endpoint string
	HTTP     *http.Client
}

func NewHTTPItineraryClient(endpoint string, timeout time.Duration) *HTTPItineraryClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPItineraryClient{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

func (c *HTTPItineraryClient) GenerateItinerary(ctx context.Context, prompt request_models.ItineraryPrompt) (*response_models.ItineraryProposal, error) {
	if prompt.Activities == nil {
		prompt.Activities = []response_models.ActivityResponse{}
	}
	body, err := json.Marshal(prompt)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build itinerary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("itinerary service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxItineraryBody))
	if err != nil {
		return nil, fmt.Errorf("read itinerary response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("itinerary service returned %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}
	return DecodeItinerary(payload)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
