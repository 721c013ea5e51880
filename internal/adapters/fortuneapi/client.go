// Package fortuneapi is the client side of the fortune HTTP API.
package fortuneapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL points at a locally running fortuned.
const DefaultBaseURL = "http://127.0.0.1:8787"

// FallbackMessage is shown when a failure carries no message of its own.
const FallbackMessage = "Hata oluştu"

type Fortune struct {
	FortuneText string `json:"fortuneText"`
	Meta        Meta   `json:"meta"`
}

type Meta struct {
	Mocked    bool   `json:"mocked"`
	Timestamp string `json:"timestamp"`
}

// APIError is a non-success answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return FallbackMessage
	}
	return e.Message
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetFortune asks the service for name's fortune. No retries.
func (c *Client) GetFortune(ctx context.Context, name string) (Fortune, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return Fortune{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/fortune", bytes.NewReader(body))
	if err != nil {
		return Fortune{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Fortune{}, fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fortune{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Fortune{}, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	var f Fortune
	if err := json.Unmarshal(respBody, &f); err != nil {
		return Fortune{}, fmt.Errorf("decode response: %w", err)
	}
	return f, nil
}

// errorMessage prefers the JSON "error" field and falls back to the raw text.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
