// Package eventstore is the outbound client for the third-party event-storage
// API. Events are created one at a time; outcomes are normalized into
// delegate.Result values so callers never see a transport fault as a Go error.
package eventstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/captain/internal/adapters/delegate"
	"github.com/okian/captain/internal/toolkit"
	"github.com/okian/captain/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout   = 30 * time.Second
	eventsPath       = "/events"
	maxResponseBytes = 1 << 20
)

// Outcome labels recorded on store metrics.
const (
	outcomeOK          = "ok"
	outcomeTransport   = "transport_error"
	outcomeApplication = "application_error"
)

// Client creates events in the external store. Safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates an event-store client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// CreateEvent POSTs one event to the store. The store acknowledges with 200
// or 201; anything else is a failure. No retry and no batching: the caller
// owns per-item bookkeeping.
func (c *Client) CreateEvent(ctx context.Context, payload any) delegate.Result {
	start := time.Now()
	result := c.create(ctx, payload)

	metrics.RecordStoreRequestLatency(float64(time.Since(start).Milliseconds()))
	switch result.Kind {
	case delegate.KindTransport:
		metrics.RecordStoreRequest(outcomeTransport)
	case delegate.KindApplication:
		metrics.RecordStoreRequest(outcomeApplication)
	default:
		metrics.RecordStoreRequest(outcomeOK)
	}

	return result
}

func (c *Client) create(ctx context.Context, payload any) delegate.Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return delegate.Result{
			Success: false,
			Error:   fmt.Sprintf("encode event: %v", err),
			Kind:    delegate.KindTransport,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+eventsPath, bytes.NewReader(body))
	if err != nil {
		return delegate.Result{
			Success: false,
			Error:   fmt.Sprintf("build request: %v", err),
			Kind:    delegate.KindTransport,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	if id := toolkit.RequestID(ctx); id != "" {
		req.Header.Set(toolkit.RequestIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return delegate.Result{Success: false, Error: err.Error(), Kind: delegate.KindTransport}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return delegate.Result{
			Success: false,
			Error:   fmt.Sprintf("read response: %v", err),
			Kind:    delegate.KindTransport,
		}
	}

	// The store acknowledges creation with 200 or 201 only.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return delegate.Result{
			Success: false,
			Error:   fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
			Kind:    delegate.KindApplication,
		}
	}
	return delegate.Result{Success: true, Data: data}
}
