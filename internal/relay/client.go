// Package relay posts intake answers to a third-party form relay.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mark3labs/planwise/internal/intake"
	"github.com/mark3labs/planwise/internal/logger"
)

// StatusError is returned when the relay answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay returned status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error { return intake.ErrRejected }

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("relay request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is makes a TransportError match intake.ErrTransport.
func (e *TransportError) Is(target error) bool { return target == intake.ErrTransport }

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client submits answers to a single relay endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ intake.Submitter = (*Client)(nil)

// New creates a client for endpoint. The default HTTP client has no
// timeout; the caller's context bounds each request.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL answers are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Encode returns the JSON body Submit would send for answers.
func Encode(answers intake.Answers) ([]byte, error) {
	body, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	return body, nil
}

// Submit performs exactly one POST of answers. A 2xx status is success;
// the response body is read and discarded.
func (c *Client) Submit(ctx context.Context, answers intake.Answers) error {
	body, err := Encode(answers)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Err: fmt.Errorf("building request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Debug("relay: POST %s (%d bytes)", c.endpoint, len(body))
	if logger.Default.Level() == logger.LevelDebug {
		logger.Debug("relay: body %s", body)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("relay: request failed: %v", err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("relay: rejected with status %d", resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode}
	}
	logger.Info("relay: accepted with status %d", resp.StatusCode)
	return nil
}
