// Package ai talks to the remote AI inference service over HTTP.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUnavailable is returned for any transport error, non-200 status or
// malformed body from the AI service. Callers substitute the fallback
// reply instead of surfacing it to the end user.
var ErrUnavailable = errors.New("ai service unavailable")

// ChatRequest is the payload sent to POST /chat.
type ChatRequest struct {
	Message     string         `json:"message"`
	UserID      string         `json:"user_id"`
	Action      string         `json:"action"`
	Timestamp   string         `json:"timestamp"`
	UserContext *UserContext   `json:"user_context,omitempty"`
	ChatHistory []HistoryEntry `json:"chat_history,omitempty"`
}

// UserContext identifies the authenticated caller to the AI service.
type UserContext struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

// HistoryEntry is one prior exchange sent along for context.
type HistoryEntry struct {
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
	Sentiment   string `json:"sentiment,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// ChatResponse is the reply expected from POST /chat. A response
// missing Reply is treated as a full failure of the call.
type ChatResponse struct {
	Reply      string  `json:"reply"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// Fallback is the canned reply substituted when the AI service cannot
// be reached. The user always gets some supportive response.
func Fallback() *ChatResponse {
	return &ChatResponse{
		Reply:      "I apologize, but I'm having trouble connecting right now. Please try again in a moment. Your message is important to me.",
		Sentiment:  "NEUTRAL",
		Confidence: 0.5,
		Error:      "Service temporarily unavailable",
	}
}

// Client is a thin HTTP client for the AI service.
type Client struct {
	http *resty.Client
}

// New builds a Client with a total per-call timeout and a shorter
// connect timeout.
func New(baseURL string, timeout, connectTimeout time.Duration) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "MindMate-Go/1.0").
		SetTimeout(timeout).
		SetTransport(transport)

	return &Client{http: c}
}

// Chat performs one blocking round trip to POST /chat.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/chat")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, out.Error)
	}
	if out.Reply == "" {
		return nil, fmt.Errorf("%w: response missing reply", ErrUnavailable)
	}
	return &out, nil
}

// Health reports whether GET /health answers 200.
func (c *Client) Health(ctx context.Context) bool {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return false
	}
	return resp.StatusCode() == http.StatusOK
}
