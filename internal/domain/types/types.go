// Package types contains the tool payload contracts shared across the agents.
package types

import (
	model "github.com/okian/captain/internal/domain/model"
)

// UploadScheduleImageRequest is the coordinator's upload_schedule_image input.
type UploadScheduleImageRequest struct {
	TeamID          int64  `json:"team_id"`
	FileName        string `json:"file_name"`
	MIMEType        string `json:"mime_type,omitempty"`
	FileContent     string `json:"file_content"` // base64-encoded image bytes
	FileSize        int64  `json:"file_size,omitempty"`
	UploadTimestamp string `json:"upload_timestamp,omitempty"`
}

// AnalyzeImageRequest is the input of the schedule agent's
// analyze_schedule_image tool. The coordinator fills it from a validated
// upload when delegating analysis.
type AnalyzeImageRequest struct {
	TeamID          int64  `json:"team_id"`
	FileName        string `json:"file_name"`
	MIMEType        string `json:"mime_type,omitempty"`
	FileContent     string `json:"file_content"` // base64-encoded image bytes
	FileSize        int64  `json:"file_size,omitempty"`
	UploadTimestamp string `json:"upload_timestamp,omitempty"`
}

// AnalyzeImageResponse reports what the analyzer extracted from one image.
// Failures are carried in the value: Success false plus Error, never a
// transport-level fault.
type AnalyzeImageResponse struct {
	Success     bool                   `json:"success"`
	Message     string                 `json:"message,omitempty"`
	Events      []model.CandidateEvent `json:"events"`
	TotalEvents int                    `json:"total_events"`
	Confidence  float64                `json:"confidence,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// CreateEventsRequest is the input of the schedule agent's
// create_schedule_events tool.
type CreateEventsRequest struct {
	TeamID int64                  `json:"team_id"`
	Events []model.CandidateEvent `json:"events"`
}

// CreateEventsResponse reports per-event outcomes of a creation batch.
// CreatedEvents and FailedEvents are always present, empty when nothing
// landed in them; EventsCreated+EventsFailed equals the batch size.
type CreateEventsResponse struct {
	Success       bool                 `json:"success"`
	Message       string               `json:"message,omitempty"`
	EventsCreated int                  `json:"events_created"`
	EventsFailed  int                  `json:"events_failed"`
	CreatedEvents []model.CreatedEvent `json:"created_events"`
	FailedEvents  []model.FailedEvent  `json:"failed_events"`
	Error         string               `json:"error,omitempty"`
}
