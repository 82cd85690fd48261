// Package delegate invokes named capabilities on sibling agents over HTTP
// and normalizes every outcome into a uniform Result value. Transport faults
// and application-level failures both become values, never Go errors, so
// callers branch on a single success flag.
package delegate

import (
	"encoding/json"
	"fmt"
)

// Kind classifies how a delegated call failed.
type Kind string

// Failure kinds. KindNone marks a successful call.
const (
	KindNone Kind = ""
	// KindTransport covers network-level faults: timeout, connection
	// refused, DNS failure, or an unreadable response.
	KindTransport Kind = "transport"
	// KindApplication covers responses the target returned but flagged
	// as failed (a non-2xx status).
	KindApplication Kind = "application"
)

// Result is the uniform outcome of one delegated call.
type Result struct {
	Success bool
	Data    json.RawMessage
	Error   string
	Kind    Kind
}

// Decode unmarshals the success payload into v.
func (r Result) Decode(v any) error {
	if !r.Success {
		return fmt.Errorf("%w: %s", ErrNoData, r.Error)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

// success wraps a decoded 2xx body.
func success(data []byte) Result {
	return Result{Success: true, Data: data}
}

// transportFailure wraps a network-level fault.
func transportFailure(err error) Result {
	return Result{Success: false, Error: err.Error(), Kind: KindTransport}
}

// applicationFailure wraps a non-2xx response, keeping the status and body
// as the error detail.
func applicationFailure(status int, body string) Result {
	return Result{
		Success: false,
		Error:   fmt.Sprintf("HTTP %d: %s", status, body),
		Kind:    KindApplication,
	}
}
