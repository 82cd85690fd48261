package delegate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/captain/internal/toolkit"
	"github.com/okian/captain/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout = 30 * time.Second
	// maxResponseBytes caps how much of a response body is read. Tool
	// responses are small; the cap guards against a misbehaving sibling.
	maxResponseBytes = 8 << 20
)

// Outcome labels recorded on delegation metrics.
const (
	outcomeOK          = "ok"
	outcomeTransport   = "transport_error"
	outcomeApplication = "application_error"
)

// Client invokes tools on one sibling agent. Construct one Client per
// target service; it is safe for concurrent use.
type Client struct {
	service    string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a delegation client for the service at baseURL. The
// service name only labels logs and metrics.
func NewClient(service, baseURL string, opts ...Option) *Client {
	c := &Client{
		service: service,
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

// Service returns the target service name.
func (c *Client) Service() string {
	return c.service
}

// Call invokes the named tool with a JSON-encoded payload and normalizes the
// outcome. It never returns a Go error: a 2xx response becomes a success
// Result carrying the body, a non-2xx response becomes an application
// failure carrying "HTTP <status>: <body>", and a network fault becomes a
// transport failure carrying the fault description. No retry is performed;
// failures surface immediately to the caller.
func (c *Client) Call(ctx context.Context, tool string, payload any) Result {
	start := time.Now()
	result := c.call(ctx, tool, payload)

	latencyMs := float64(time.Since(start).Milliseconds())
	metrics.RecordDelegatedCallLatency(c.service, tool, latencyMs)
	metrics.RecordDelegatedCall(c.service, tool, outcomeLabel(result))

	return result
}

func (c *Client) call(ctx context.Context, tool string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return transportFailure(fmt.Errorf("encode request: %w", err))
	}

	url := c.baseURL + "/tools/" + tool
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return transportFailure(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if id := toolkit.RequestID(ctx); id != "" {
		req.Header.Set(toolkit.RequestIDHeader, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportFailure(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return applicationFailure(resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return success(data)
}

func outcomeLabel(r Result) string {
	switch r.Kind {
	case KindTransport:
		return outcomeTransport
	case KindApplication:
		return outcomeApplication
	default:
		return outcomeOK
	}
}
