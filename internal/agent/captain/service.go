// Package captain implements the team-captain agent: the coordinator that
// sequences the schedule agent's tools to turn one uploaded schedule image
// into stored events.
package captain

import (
	"context"
	"sync"

	"github.com/okian/captain/internal/adapters/delegate"
	"github.com/okian/captain/internal/toolkit"
	"github.com/okian/captain/pkg/logger"
)

// Name is the service identity reported by the health endpoint.
const Name = "team-captain-agent"

// ScheduleCaller invokes one tool on the schedule agent and reports the
// outcome as a value.
type ScheduleCaller interface {
	Call(ctx context.Context, tool string, payload any) delegate.Result
}

// Service implements the coordinator's tools.
type Service struct {
	mu sync.Mutex

	// Core components
	schedule ScheduleCaller

	// Configuration
	maxUploadBytes int64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxUploadBytes: 10 << 20,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service. The schedule caller has no sensible
// default because it needs the sibling's address, so starting without one
// is refused.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.schedule == nil {
		return ErrNoScheduleCaller
	}

	s.started = true
	s.logger.Info(ctx, "team captain agent started",
		logger.Int64("maxUploadBytes", s.maxUploadBytes),
	)

	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "team captain agent stopped")
}

// Tools returns the capabilities exposed by the coordinator.
func (s *Service) Tools() []toolkit.Tool {
	return []toolkit.Tool{
		toolkit.NewTool("upload_schedule_image",
			"Upload a schedule image, extract its events, and create them in the event store.",
			s.UploadScheduleImage),
		toolkit.NewTool("upload_schedule",
			"Upload and parse a text team schedule.",
			s.uploadSchedule),
		toolkit.NewTool("send_reminder",
			"Send a reminder to team members.",
			s.sendReminder),
		toolkit.NewTool("analyze_attendance",
			"Analyze attendance patterns for a team.",
			s.analyzeAttendance),
	}
}
