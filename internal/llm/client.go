package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/codepilot/codepilot/internal/config"
	"github.com/codepilot/codepilot/internal/core"
)

// Provider abstracts the text-generation endpoint behind a single
// synchronous call. Implementations must respect context cancellation and
// deadlines.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// generateRequest is the Ollama /api/generate request envelope. Streaming is
// always disabled; the pipeline wants exactly one complete text per prompt.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumCtx      int     `json:"num_ctx"`
}

// generateResponse is the subset of the Ollama response the client consumes.
// The Response field is the designated text; everything else is ignored.
type generateResponse struct {
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

// OllamaClient issues blocking generation requests to an Ollama server.
type OllamaClient struct {
	cfg    config.InferenceConfig
	client *http.Client
}

// NewOllamaClient creates a client with transport timeouts suited to slow
// model generations.
func NewOllamaClient(cfg config.InferenceConfig) *OllamaClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &OllamaClient{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
	}
}

// Generate sends one prompt and returns the model's full text. Every failure
// mode (transport error, timeout, non-2xx status, undecodable body, missing
// response field) wraps core.ErrInference so the orchestrator aborts the
// request instead of treating the output as deliberately empty.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.cfg.Temperature,
			NumCtx:      c.cfg.NumCtx,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %w", core.ErrInference, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %w", core.ErrInference, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrInference, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %w", core.ErrInference, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d from inference endpoint", core.ErrInference, resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: undecodable response body: %w", core.ErrInference, err)
	}
	if decoded.Response == nil {
		return "", fmt.Errorf("%w: response envelope missing 'response' field", core.ErrInference)
	}

	return *decoded.Response, nil
}
