package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
)

const maxChatBody = 1 << 20

// HTTPChatClient calls an external chat service that speaks the
// {conversation:[{role,text}]} -> {reply} contract. Assistant turns are sent with role "bot".
type HTTPChatClient struct {
	Endpoint string
	HTTP     *http.Client
}

func NewHTTPChatClient(endpoint string, timeout time.Duration) *HTTPChatClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPChatClient{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

func (c *HTTPChatClient) Reply(ctx context.Context, conversation []request_models.ChatMessage) (string, error) {
	out := request_models.ChatRequest{Conversation: make([]request_models.ChatMessage, 0, len(conversation))}
	for _, m := range conversation {
		if m.Role != request_models.ChatRoleUser {
			m.Role = request_models.ChatRoleBot
		}
		out.Conversation = append(out.Conversation, m)
	}
	body, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxChatBody))
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("chat service returned %d: %s", resp.StatusCode, truncate(string(payload), 200))
	}

	var reply response_models.ChatResponse
	if err := json.Unmarshal(payload, &reply); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return strings.TrimSpace(reply.Reply), nil
}
