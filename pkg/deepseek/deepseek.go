package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// New validates cfg and returns a chat completion client
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &deepseekImpl{
		vendor:  cfg.Vendor,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  cfg.HTTPClient,
	}, nil
}

func (c *deepseekImpl) Model() string  { return c.model }
func (c *deepseekImpl) Vendor() Vendor { return c.vendor }

// GenerateContent posts one chat completion. A reply without choices is ErrEmptyCompletion.
func (c *deepseekImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	payload := *req
	if payload.Model == "" {
		payload.Model = c.model
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", c.vendor, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp.StatusCode, raw)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	return &out, nil
}

func (c *deepseekImpl) apiError(status int, raw []byte) *APIError {
	var envelope ErrorResponse
	msg := ""
	if json.Unmarshal(raw, &envelope) == nil {
		msg = envelope.Error.Message
	}
	if msg == "" {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		msg = string(raw)
	}
	return &APIError{Vendor: c.vendor, StatusCode: status, Message: msg}
}
