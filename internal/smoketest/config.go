// Package smoketest drives one schedule-image upload through a running
// team-captain agent and verifies the orchestration arithmetic.
package smoketest

import "time"

// Config holds configuration for the smoke test.
type Config struct {
	BaseURL   string        // Base URL of the team-captain agent
	TeamID    int64         // Team the upload belongs to
	ImageFile string        // Optional image file; a synthetic one is used when empty
	Timeout   time.Duration // HTTP request timeout
	LogFile   string        // Log file for test output
	Verbose   bool          // Enable verbose logging
}

// uploadRequest mirrors the coordinator's upload_schedule_image input.
type uploadRequest struct {
	TeamID          int64  `json:"team_id"`
	FileName        string `json:"file_name"`
	MIMEType        string `json:"mime_type,omitempty"`
	FileContent     string `json:"file_content"`
	FileSize        int64  `json:"file_size,omitempty"`
	UploadTimestamp string `json:"upload_timestamp,omitempty"`
}

// orchestrationResult mirrors the fields of the coordinator's response the
// smoke test inspects.
type orchestrationResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	TeamID        int64   `json:"team_id"`
	EventsFound   int     `json:"events_found"`
	EventsCreated int     `json:"events_created"`
	EventsFailed  int     `json:"events_failed"`
	Confidence    float64 `json:"confidence"`
	Error         string  `json:"error"`
}

// healthResponse mirrors the liveness body.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
