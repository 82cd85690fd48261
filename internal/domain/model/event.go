package model

import "encoding/json"

// Event type values recognized by the schedule tools.
const (
	EventTypePractice = "practice"
	EventTypeGame     = "game"
)

// CandidateEvent is a schedule event extracted from an uploaded image.
// It has no identity until the external event store persists it.
type CandidateEvent struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	EventType   string `json:"event_type"`
	Opponent    string `json:"opponent,omitempty"`
	Description string `json:"description,omitempty"`
}

// CreatedEvent pairs a candidate with whatever record the store returned.
type CreatedEvent struct {
	EventData CandidateEvent  `json:"event_data"`
	Record    json.RawMessage `json:"record,omitempty"`
}

// FailedEvent pairs a candidate with the error that kept it out of the store.
type FailedEvent struct {
	EventData CandidateEvent `json:"event_data"`
	Error     string         `json:"error"`
}
