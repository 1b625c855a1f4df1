package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"scribe/internal/config"
)

// Client issues single generateContent calls against the
// generative-language API. Retry and fallback live in the Dispatcher; the
// client maps exactly one attempt to one HTTP request.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client from config. The per-attempt timeout is
// enforced here so every dispatcher attempt has the same bound.
func NewClient(cfg *config.GeminiConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// GenerateContent posts contents to the given model. A non-2xx status
// returns *StatusError carrying the upstream error message; transport
// failures return the underlying error unwrapped into the chain.
func (c *Client) GenerateContent(ctx context.Context, model string, contents []Content) (*GenerateContentResponse, error) {
	body, err := json.Marshal(GenerateContentRequest{Contents: contents})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var envelope apiErrorEnvelope
		if err := json.Unmarshal(raw, &envelope); err == nil {
			statusErr.Message = envelope.Error.Message
		}
		return nil, statusErr
	}

	var out GenerateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &out, nil
}
