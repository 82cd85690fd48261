package captain

import (
	"context"

	"github.com/okian/captain/internal/domain/types"
)

// The tools below are declared capabilities without behavior yet: they
// acknowledge their input with the canned payloads the rest of the fleet
// already expects. None of them delegates anywhere.

// TODO: route analyze_attendance through the attendance agent once the
// coordinator carries a client for it.
func (s *Service) analyzeAttendance(_ context.Context, req types.AnalyzeAttendanceRequest) (types.AnalyzeAttendanceResponse, error) {
	return types.AnalyzeAttendanceResponse{
		Success:  true,
		Message:  "Attendance analysis completed",
		Patterns: map[string]any{},
		TeamID:   req.TeamID,
	}, nil
}

func (s *Service) uploadSchedule(_ context.Context, req types.UploadScheduleRequest) (types.UploadScheduleResponse, error) {
	return types.UploadScheduleResponse{
		Success:      true,
		Message:      "Schedule uploaded successfully",
		ParsedEvents: []any{},
		TeamID:       req.TeamID,
	}, nil
}

func (s *Service) sendReminder(_ context.Context, req types.SendReminderRequest) (types.SendReminderResponse, error) {
	return types.SendReminderResponse{
		Success:    true,
		Message:    "Reminder sent successfully",
		Recipients: req.Recipients,
		TeamID:     req.TeamID,
	}, nil
}
