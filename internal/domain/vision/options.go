package vision

import (
	"math/rand"
	"time"
)

// Option applies a configuration option to the StubAnalyzer.
type Option func(*StubAnalyzer)

// WithLatencyRange sets the simulated latency range.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(a *StubAnalyzer) {
		if minLatency > 0 && maxLatency > minLatency {
			a.minLatency = minLatency
			a.maxLatency = maxLatency
		}
	}
}

// WithSeed reseeds the latency jitter source.
func WithSeed(seed int64) Option {
	return func(a *StubAnalyzer) {
		a.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible testing
	}
}

// WithNow sets the clock used to date the generated events.
func WithNow(now func() time.Time) Option {
	return func(a *StubAnalyzer) {
		if now != nil {
			a.now = now
		}
	}
}
