// Package schedule implements the schedule agent: it analyzes uploaded
// schedule images and creates the extracted events in the external event
// store, one at a time.
package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/captain/internal/adapters/delegate"
	"github.com/okian/captain/internal/domain/model"
	"github.com/okian/captain/internal/domain/types"
	"github.com/okian/captain/internal/domain/vision"
	"github.com/okian/captain/pkg/logger"
	"github.com/okian/captain/pkg/metrics"
)

// Name is the service identity reported by the health endpoint.
const Name = "schedule-agent"

// EventCreator persists one candidate event in the external store.
type EventCreator interface {
	CreateEvent(ctx context.Context, payload any) delegate.Result
}

// Service implements the schedule agent's tools.
type Service struct {
	mu sync.Mutex

	// Core components
	analyzer vision.Analyzer
	store    EventCreator

	// Configuration
	maxUploadBytes   int64
	visionMinLatency time.Duration
	visionMaxLatency time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxUploadBytes:   10 << 20,
		visionMinLatency: 80 * time.Millisecond,
		visionMaxLatency: 150 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components. The event creator has no
// sensible default because it needs the store address, so starting without
// one is refused.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		return ErrNoEventCreator
	}

	if s.analyzer == nil {
		s.analyzer = vision.NewStubAnalyzer(
			vision.WithLatencyRange(s.visionMinLatency, s.visionMaxLatency),
		)
	}

	s.started = true
	s.logger.Info(ctx, "schedule agent started",
		logger.Int64("maxUploadBytes", s.maxUploadBytes),
	)

	return nil
}

// Stop shuts the service down. The agent holds no connections of its own,
// so this only flips the lifecycle state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "schedule agent stopped")
}

// AnalyzeScheduleImage decodes an uploaded schedule image and runs the
// vision analyzer over it. Failures are reported in the response value; the
// analyzer is never invoked for an upload that does not decode.
func (s *Service) AnalyzeScheduleImage(ctx context.Context, req types.AnalyzeImageRequest) (types.AnalyzeImageResponse, error) {
	upload, err := model.DecodeUpload(model.UploadInput{
		TeamID:       req.TeamID,
		FileName:     req.FileName,
		MIMEType:     req.MIMEType,
		Content:      req.FileContent,
		DeclaredSize: req.FileSize,
		UploadedAt:   req.UploadTimestamp,
	}, s.maxUploadBytes)
	if err != nil {
		metrics.RecordImageDecodeError()
		s.logger.Warn(ctx, "schedule image rejected",
			logger.Int64("teamID", req.TeamID),
			logger.String("fileName", req.FileName),
			logger.Error(err),
		)
		return types.AnalyzeImageResponse{
			Success: false,
			Message: "Failed to decode schedule image",
			Events:  []model.CandidateEvent{},
			Error:   err.Error(),
		}, nil
	}
	metrics.RecordImageProcessed()

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, vision.Input{
		TeamID:   upload.TeamID,
		FileName: upload.FileName,
		MIMEType: upload.MIMEType,
		Content:  upload.Content,
	})
	metrics.RecordVisionLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		s.logger.Warn(ctx, "schedule image analysis failed",
			logger.Int64("teamID", upload.TeamID),
			logger.String("fileName", upload.FileName),
			logger.Error(err),
		)
		return types.AnalyzeImageResponse{
			Success: false,
			Message: "Schedule image analysis failed",
			Events:  []model.CandidateEvent{},
			Error:   err.Error(),
		}, nil
	}

	s.logger.Info(ctx, "schedule image analyzed",
		logger.Int64("teamID", upload.TeamID),
		logger.String("fileName", upload.FileName),
		logger.Int("events", len(result.Events)),
		logger.Float64("confidence", result.Confidence),
	)

	return types.AnalyzeImageResponse{
		Success:     true,
		Message:     fmt.Sprintf("Found %d events in schedule image", len(result.Events)),
		Events:      result.Events,
		TotalEvents: len(result.Events),
		Confidence:  result.Confidence,
	}, nil
}

// storeEventPayload is the shape POSTed to the event store: the candidate
// event's fields flattened alongside the owning team id.
type storeEventPayload struct {
	model.CandidateEvent
	TeamID int64 `json:"team_id"`
}

// CreateScheduleEvents stores a batch of candidate events one at a time.
// The batch is best effort: a failed event is recorded in the failed list
// and the loop moves on, so EventsCreated+EventsFailed always equals the
// batch size. An empty batch answers immediately without touching the store.
func (s *Service) CreateScheduleEvents(ctx context.Context, req types.CreateEventsRequest) (types.CreateEventsResponse, error) {
	if req.TeamID <= 0 {
		return types.CreateEventsResponse{
			Success:       false,
			Message:       "Event creation rejected",
			CreatedEvents: []model.CreatedEvent{},
			FailedEvents:  []model.FailedEvent{},
			Error:         "team_id must be a positive integer",
		}, nil
	}

	if len(req.Events) == 0 {
		return types.CreateEventsResponse{
			Success:       true,
			Message:       "No events to create",
			CreatedEvents: []model.CreatedEvent{},
			FailedEvents:  []model.FailedEvent{},
		}, nil
	}

	created := make([]model.CreatedEvent, 0, len(req.Events))
	failed := make([]model.FailedEvent, 0)

	for _, event := range req.Events {
		result := s.store.CreateEvent(ctx, storeEventPayload{
			CandidateEvent: event,
			TeamID:         req.TeamID,
		})
		if !result.Success {
			metrics.RecordEventCreationFailure()
			s.logger.Warn(ctx, "event creation failed",
				logger.Int64("teamID", req.TeamID),
				logger.String("title", event.Title),
				logger.String("error", result.Error),
			)
			failed = append(failed, model.FailedEvent{
				EventData: event,
				Error:     result.Error,
			})
			continue
		}

		metrics.RecordEventCreated()
		created = append(created, model.CreatedEvent{
			EventData: event,
			Record:    result.Data,
		})
	}

	s.logger.Info(ctx, "event batch processed",
		logger.Int64("teamID", req.TeamID),
		logger.Int("created", len(created)),
		logger.Int("failed", len(failed)),
	)

	return types.CreateEventsResponse{
		Success:       true,
		Message:       fmt.Sprintf("Created %d of %d events", len(created), len(req.Events)),
		EventsCreated: len(created),
		EventsFailed:  len(failed),
		CreatedEvents: created,
		FailedEvents:  failed,
	}, nil
}
