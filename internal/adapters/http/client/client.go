// Package client talks to the remote scoring service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fairpay/fairpay/internal/domain/shift"
	"github.com/fairpay/fairpay/internal/domain/types"
	"github.com/fairpay/fairpay/pkg/logger"
)

// Service endpoints.
const (
	AnalyzePath = "/analyze-form"
	AppealPath  = "/generate-appeal-form"

	// RequestIDHeader correlates a client call with server logs.
	RequestIDHeader = "X-Request-ID"

	maxBodyBytes = 1 << 20
)

// Client posts shift batches to the scoring service. It issues exactly one
// request per call and never retries.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     logger.Logger
}

// New creates a client with defaults overridden by opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// Analyze posts the batch to /analyze-form.
func (c *Client) Analyze(ctx context.Context, shifts []shift.Shift) (types.AnalysisResponse, error) {
	var out types.AnalysisResponse
	if err := c.post(ctx, "client.analyze", AnalyzePath, shifts, &out); err != nil {
		return types.AnalysisResponse{}, err
	}
	return out, nil
}

// GenerateAppeal posts the batch to /generate-appeal-form.
func (c *Client) GenerateAppeal(ctx context.Context, shifts []shift.Shift) (types.AppealResponse, error) {
	var out types.AppealResponse
	if err := c.post(ctx, "client.generate_appeal", AppealPath, shifts, &out); err != nil {
		return types.AppealResponse{}, err
	}
	return out, nil
}

// errorEnvelope picks the error field out of any response body.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) post(ctx context.Context, op, path string, shifts []shift.Shift, out any) error {
	body, err := json.Marshal(types.ShiftBatch{Shifts: shifts})
	if err != nil {
		return &AnalysisError{Op: op, Cause: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &AnalysisError{Op: op, Cause: fmt.Errorf("create request: %w", err)}
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	log := c.log.With(logger.String("op", op), logger.String("request_id", reqID))
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "scoring request failed", logger.Error(err))
		return &AnalysisError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &AnalysisError{Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("read response: %w", err)}
	}

	var env errorEnvelope
	envErr := json.Unmarshal(raw, &env)

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok || env.Error != "" {
		log.Warn(ctx, "scoring service rejected batch",
			logger.Int("status", resp.StatusCode),
			logger.String("reason", env.Error))
		return &AnalysisError{Op: op, Status: resp.StatusCode, Message: env.Error}
	}
	if envErr != nil {
		return &AnalysisError{Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("decode response: %w", envErr)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &AnalysisError{Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("decode response: %w", err)}
	}

	log.Debug(ctx, "scoring request completed",
		logger.Int("status", resp.StatusCode),
		logger.Duration("took", time.Since(start)))
	return nil
}
