package captain

import (
	"github.com/okian/captain/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithScheduleCaller sets the client used to delegate to the schedule agent.
func WithScheduleCaller(c ScheduleCaller) Option {
	return func(s *Service) {
		if c != nil {
			s.schedule = c
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

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
