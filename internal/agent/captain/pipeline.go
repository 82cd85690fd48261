package captain

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/captain/internal/domain/model"
	"github.com/okian/captain/internal/domain/types"
	"github.com/okian/captain/pkg/logger"
	"github.com/okian/captain/pkg/metrics"
)

// state is the position of one upload run in the orchestration pipeline.
type state int

const (
	stateReceived state = iota
	stateAnalyzing
	stateCreating
	stateAssembling
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateReceived:
		return "received"
	case stateAnalyzing:
		return "analyzing"
	case stateCreating:
		return "creating"
	case stateAssembling:
		return "assembling"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// run is the per-request pipeline state. A fresh one is built for every
// upload; nothing in it is shared across requests.
type run struct {
	state   state
	teamID  int64
	started time.Time
	log     logger.Logger
}

func (s *Service) newRun(teamID int64) *run {
	return &run{
		state:   stateReceived,
		teamID:  teamID,
		started: time.Now(),
		log:     s.logger,
	}
}

// advance moves the run to the next pipeline state.
func (r *run) advance(ctx context.Context, to state) {
	r.log.Debug(ctx, "pipeline state change",
		logger.Int64("teamID", r.teamID),
		logger.String("from", r.state.String()),
		logger.String("to", to.String()),
	)
	r.state = to
}

// finish moves the run to a terminal state and records its metrics.
func (r *run) finish(ctx context.Context, to state) {
	r.advance(ctx, to)
	metrics.RecordPipelineRun(to.String())
	metrics.RecordPipelineDuration(float64(time.Since(r.started).Milliseconds()))
}

// fail terminates the run in the failed state and builds the base error
// result. Callers enrich it with whatever the pipeline had already
// extracted before the failure.
func (r *run) fail(ctx context.Context, message, cause string) model.OrchestrationResult {
	r.log.Warn(ctx, "pipeline run failed",
		logger.Int64("teamID", r.teamID),
		logger.String("state", r.state.String()),
		logger.String("error", cause),
	)
	r.finish(ctx, stateFailed)

	return model.OrchestrationResult{
		Success:     false,
		Message:     message,
		TeamID:      r.teamID,
		Error:       cause,
		CompletedAt: time.Now().UTC(),
	}
}

// UploadScheduleImage runs the orchestration pipeline for one uploaded
// schedule image: validate the upload, delegate analysis, delegate event
// creation, assemble the combined result. Every failure is reported inside
// the result value; per-item creation failures are embedded and do not fail
// the run. There is no retry and no rollback.
func (s *Service) UploadScheduleImage(ctx context.Context, req types.UploadScheduleImageRequest) (model.OrchestrationResult, error) {
	r := s.newRun(req.TeamID)
	r.advance(ctx, stateAnalyzing)

	// Validate locally so an undecodable upload never leaves this service.
	// The schedule agent gets the original encoded content.
	if _, err := model.DecodeUpload(model.UploadInput{
		TeamID:       req.TeamID,
		FileName:     req.FileName,
		MIMEType:     req.MIMEType,
		Content:      req.FileContent,
		DeclaredSize: req.FileSize,
		UploadedAt:   req.UploadTimestamp,
	}, s.maxUploadBytes); err != nil {
		metrics.RecordImageDecodeError()
		return r.fail(ctx, "Failed to decode schedule image", err.Error()), nil
	}

	analysis := s.schedule.Call(ctx, "analyze_schedule_image", types.AnalyzeImageRequest{
		TeamID:          req.TeamID,
		FileName:        req.FileName,
		MIMEType:        req.MIMEType,
		FileContent:     req.FileContent,
		FileSize:        req.FileSize,
		UploadTimestamp: req.UploadTimestamp,
	})
	if !analysis.Success {
		return r.fail(ctx, "Schedule analysis failed", analysis.Error), nil
	}

	var analyzed types.AnalyzeImageResponse
	if err := analysis.Decode(&analyzed); err != nil {
		return r.fail(ctx, "Schedule analysis failed", fmt.Sprintf("unreadable analysis payload: %v", err)), nil
	}
	if !analyzed.Success {
		return r.fail(ctx, "Schedule analysis failed", analyzed.Error), nil
	}

	metrics.RecordEventsParsed(len(analyzed.Events))

	if len(analyzed.Events) == 0 {
		r.finish(ctx, stateDone)
		return model.OrchestrationResult{
			Success:     true,
			Message:     "No events found in schedule image",
			TeamID:      req.TeamID,
			Confidence:  analyzed.Confidence,
			CompletedAt: time.Now().UTC(),
		}, nil
	}

	r.advance(ctx, stateCreating)

	// A creation failure still reports what analysis extracted, so the
	// caller can retry creation without re-uploading.
	failCreation := func(cause string) model.OrchestrationResult {
		res := r.fail(ctx, "Event creation failed", cause)
		res.EventsFound = len(analyzed.Events)
		res.Confidence = analyzed.Confidence
		res.ParsedEvents = analyzed.Events
		return res
	}

	creation := s.schedule.Call(ctx, "create_schedule_events", types.CreateEventsRequest{
		TeamID: req.TeamID,
		Events: analyzed.Events,
	})
	if !creation.Success {
		return failCreation(creation.Error), nil
	}

	var created types.CreateEventsResponse
	if err := creation.Decode(&created); err != nil {
		return failCreation(fmt.Sprintf("unreadable creation payload: %v", err)), nil
	}
	if !created.Success {
		return failCreation(created.Error), nil
	}

	r.advance(ctx, stateAssembling)

	result := model.OrchestrationResult{
		Success:       true,
		Message:       fmt.Sprintf("Processed schedule image: created %d of %d events", created.EventsCreated, len(analyzed.Events)),
		TeamID:        req.TeamID,
		EventsFound:   len(analyzed.Events),
		EventsCreated: created.EventsCreated,
		EventsFailed:  created.EventsFailed,
		Confidence:    analyzed.Confidence,
		ParsedEvents:  analyzed.Events,
		CreatedEvents: created.CreatedEvents,
		FailedEvents:  created.FailedEvents,
		CompletedAt:   time.Now().UTC(),
	}

	r.finish(ctx, stateDone)
	s.logger.Info(ctx, "schedule image processed",
		logger.Int64("teamID", req.TeamID),
		logger.Int("found", result.EventsFound),
		logger.Int("created", result.EventsCreated),
		logger.Int("failed", result.EventsFailed),
	)

	return result, nil
}
