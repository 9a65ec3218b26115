// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/swebuddy-tui/internal/config"
	"github.com/jeranaias/swebuddy-tui/internal/model"
)

const (
	// DefaultBaseURL is where the development backend listens.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultEndpoint is the solve route on the backend.
	DefaultEndpoint = "/api/solve"

	// MaxResponseSize bounds how much of a reply body is read.
	MaxResponseSize = 10 * 1024 * 1024

	// maxErrorExcerpt bounds the body excerpt kept on StatusError.
	maxErrorExcerpt = 256

	userAgent = "swebuddy/0.1.0"
)

var (
	// ErrRequestFailed wraps transport-level failures.
	ErrRequestFailed = errors.New("request failed")

	// ErrMalformedResponse indicates a 2xx reply that is not a valid solve response.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrBackendError indicates a 2xx reply whose body carries an "error" field.
	ErrBackendError = errors.New("backend reported an error")
)

// StatusError is returned for any non-2xx reply.
type StatusError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("backend returned HTTP %d: %s", e.Status, e.Body)
}

// solveReply accepts both shapes the backend can send with a 2xx status.
type solveReply struct {
	Challenge string  `json:"challenge"`
	Analysis  *string `json:"analysis"`
	Error     *string `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the solve endpoint. It never retries.
type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for the backend at baseURL. The HTTP client has
// no timeout of its own; the caller's context bounds the call.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
		userAgent:  userAgent,
	}
}

// NewClientFromConfig builds a client from the [backend] section of cfg.
func NewClientFromConfig(cfg *config.Config) *Client {
	if cfg == nil {
		return NewClient("")
	}
	return NewClient(cfg.Backend.URL).
		WithEndpoint(cfg.Backend.Endpoint).
		WithTimeout(cfg.Timeout())
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// WithEndpoint sets the solve path.
func (c *Client) WithEndpoint(path string) *Client {
	if path != "" {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		c.endpoint = path
	}
	return c
}

// WithTimeout sets a whole-request timeout. Zero leaves the transport default.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	return c
}

// WithUserAgent sets the User-Agent header.
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

// URL returns the full solve URL.
func (c *Client) URL() string {
	return c.baseURL + c.endpoint
}

// =============================================================================
// SOLVE
// =============================================================================

// Solve issues exactly one POST carrying req and decodes the reply.
func (c *Client) Solve(ctx context.Context, req model.SolveRequest) (*model.SolveResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	logRequest(httpReq, requestID, req.Mode)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("backend: request %s failed after %v: %v", requestID, time.Since(start), err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	logResponse(resp, requestID, time.Since(start))

	data, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: excerpt(data)}
	}

	return decodeReply(data)
}

// decodeReply validates a 2xx body.
func decodeReply(data []byte) (*model.SolveResponse, error) {
	var reply solveReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if reply.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrBackendError, *reply.Error)
	}
	if reply.Analysis == nil {
		return nil, fmt.Errorf("%w: missing analysis", ErrMalformedResponse)
	}
	return &model.SolveResponse{
		Challenge: reply.Challenge,
		Analysis:  *reply.Analysis,
	}, nil
}

// readResponse reads the body with a size cap.
func readResponse(resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrRequestFailed, err)
	}
	if len(data) > MaxResponseSize {
		return nil, fmt.Errorf("%w: response exceeded %d bytes", ErrMalformedResponse, MaxResponseSize)
	}
	return data, nil
}

func excerpt(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorExcerpt {
		s = s[:maxErrorExcerpt] + "..."
	}
	return s
}

// logRequest never logs bodies; the context may be sensitive.
func logRequest(req *http.Request, id string, mode model.Mode) {
	log.Printf("backend: request %s %s %s mode=%s", id, req.Method, req.URL.Path, mode)
}

func logResponse(resp *http.Response, id string, d time.Duration) {
	log.Printf("backend: response %s %d (%v)", id, resp.StatusCode, d)
}
