// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Default upload cap: schedule photos are a few MB at most.
const defaultMaxUploadBytes = 10 << 20

// Config contains process configuration shared by the agent binaries.
// Each binary consumes the slice relevant to it.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// ScheduleAgentURL is the base URL the coordinator delegates
	// schedule tool calls to.
	ScheduleAgentURL string `koanf:"schedule_agent_url"`

	// EventStoreURL is the base URL of the external event-storage API.
	EventStoreURL string `koanf:"event_store_url"`

	// CallTimeoutMS bounds each outbound HTTP call.
	CallTimeoutMS int `koanf:"call_timeout_ms"`

	// MaxUploadBytes caps the decoded size of an uploaded schedule image.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// VisionLatencyMinMS and VisionLatencyMaxMS simulate external vision
	// model latency bounds.
	VisionLatencyMinMS int `koanf:"vision_latency_min_ms"`
	VisionLatencyMaxMS int `koanf:"vision_latency_max_ms"`
}

// New creates a Config using provided options. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use (e.g.,
// loading from env/files) and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:           "info",
		Addr:               ":8000",
		ScheduleAgentURL:   "http://schedule-agent:8000",
		EventStoreURL:      "http://event-store:8000",
		CallTimeoutMS:      30_000,
		MaxUploadBytes:     defaultMaxUploadBytes,
		VisionLatencyMinMS: 80,
		VisionLatencyMaxMS: 150,
	}
	return c
}
