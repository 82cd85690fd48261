package model

import "time"

// OrchestrationResult is the outcome of one schedule upload run. Exactly one
// is produced per request; nothing in it is shared across requests.
type OrchestrationResult struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message,omitempty"`
	TeamID        int64            `json:"team_id"`
	EventsFound   int              `json:"events_found"`
	EventsCreated int              `json:"events_created"`
	EventsFailed  int              `json:"events_failed"`
	Confidence    float64          `json:"confidence,omitempty"`
	ParsedEvents  []CandidateEvent `json:"parsed_events,omitempty"`
	CreatedEvents []CreatedEvent   `json:"created_events,omitempty"`
	FailedEvents  []FailedEvent    `json:"failed_events,omitempty"`
	Error         string           `json:"error,omitempty"`
	CompletedAt   time.Time        `json:"completed_at"`
}
