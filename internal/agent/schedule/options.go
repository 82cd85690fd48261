package schedule

import (
	"time"

	"github.com/okian/captain/internal/domain/vision"
	"github.com/okian/captain/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithAnalyzer sets the vision analyzer used for schedule images.
func WithAnalyzer(a vision.Analyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// WithEventCreator sets the event-store client used to persist events.
func WithEventCreator(c EventCreator) Option {
	return func(s *Service) {
		if c != nil {
			s.store = c
		}
	}
}

// WithMaxUploadBytes caps the decoded size of accepted schedule images.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// WithVisionLatencyRange sets the simulated analysis latency range used
// when the service constructs its own stub analyzer.
func WithVisionLatencyRange(min, max time.Duration) Option {
	return func(s *Service) {
		if min > 0 && max > min {
			s.visionMinLatency = min
			s.visionMaxLatency = max
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
