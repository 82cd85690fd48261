package types

// Placeholder tool contracts. These capabilities are declared by the agents
// but carry no behavior yet: handlers answer with canned payloads until the
// real parsing, reminder, and attendance logic lands. Team ids here are
// strings, matching the declared shapes; only the image pipeline uses
// integer team ids.

// UploadScheduleRequest is the coordinator's upload_schedule input.
type UploadScheduleRequest struct {
	ScheduleContent string `json:"schedule_content"`
	TeamID          string `json:"team_id"`
}

// UploadScheduleResponse acknowledges a text-based schedule upload.
type UploadScheduleResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ParsedEvents []any  `json:"parsed_events"`
	TeamID       string `json:"team_id"`
}

// SendReminderRequest is the coordinator's send_reminder input.
type SendReminderRequest struct {
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
	TeamID     string   `json:"team_id"`
}

// SendReminderResponse acknowledges a reminder fan-out.
type SendReminderResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
	TeamID     string   `json:"team_id"`
}

// AnalyzeAttendanceRequest is the coordinator's analyze_attendance input.
type AnalyzeAttendanceRequest struct {
	AttendanceRecords []map[string]any `json:"attendance_records"`
	TeamID            string           `json:"team_id"`
}

// AnalyzeAttendanceResponse acknowledges an attendance analysis request.
type AnalyzeAttendanceResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Patterns map[string]any `json:"patterns"`
	TeamID   string         `json:"team_id"`
}

// ParseScheduleRequest is the schedule agent's parse_schedule input.
type ParseScheduleRequest struct {
	ScheduleContent string `json:"schedule_content"`
	Format          string `json:"format,omitempty"` // auto, csv, excel, ...
}

// ParseScheduleResponse reports the (not yet implemented) parse outcome.
type ParseScheduleResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	Events         []any  `json:"events"`
	TotalEvents    int    `json:"total_events"`
	FormatDetected string `json:"format_detected"`
}

// ScheduleEventUpdate is the schedule agent's update_schedule_event input.
type ScheduleEventUpdate struct {
	EventID  string `json:"event_id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	TeamID   string `json:"team_id"`
}

// UpdateEventResponse acknowledges an event update.
type UpdateEventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"event_id"`
	TeamID  string `json:"team_id"`
}

// GetEventsRequest is the schedule agent's get_schedule_events input.
type GetEventsRequest struct {
	TeamID    string `json:"team_id"`
	DateRange string `json:"date_range,omitempty"`
}

// GetEventsResponse lists stored events for a team.
type GetEventsResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Events      []any  `json:"events"`
	TeamID      string `json:"team_id"`
	TotalEvents int    `json:"total_events"`
}

// AttendanceRecord is the attendance agent's record_attendance input.
type AttendanceRecord struct {
	PlayerID  string `json:"player_id"`
	EventID   string `json:"event_id"`
	Status    string `json:"status"` // present, absent, late
	Timestamp string `json:"timestamp"`
	TeamID    string `json:"team_id"`
}

// RecordAttendanceResponse acknowledges one attendance record.
type RecordAttendanceResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RecordID string `json:"record_id"`
	PlayerID string `json:"player_id"`
	EventID  string `json:"event_id"`
	Status   string `json:"status"`
}

// AttendancePatternsRequest is the attendance agent's
// analyze_attendance_patterns input.
type AttendancePatternsRequest struct {
	TeamID    string   `json:"team_id"`
	DateRange string   `json:"date_range,omitempty"`
	PlayerIDs []string `json:"player_ids,omitempty"`
}

// AttendancePatterns is the patterns object inside the analysis response.
type AttendancePatterns struct {
	TotalEvents           int            `json:"total_events"`
	AverageAttendanceRate float64        `json:"average_attendance_rate"`
	MostConsistentPlayers []string       `json:"most_consistent_players"`
	AttendanceTrends      map[string]any `json:"attendance_trends"`
}

// AttendancePatternsResponse reports attendance patterns for a team.
type AttendancePatternsResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	TeamID   string             `json:"team_id"`
	Patterns AttendancePatterns `json:"patterns"`
}

// AttendanceReportRequest is the attendance agent's get_attendance_report
// input.
type AttendanceReportRequest struct {
	TeamID  string `json:"team_id"`
	EventID string `json:"event_id,omitempty"`
}

// AttendanceReport is the report_data object inside the report response.
type AttendanceReport struct {
	TotalPlayers int `json:"total_players"`
	PresentCount int `json:"present_count"`
	AbsentCount  int `json:"absent_count"`
	LateCount    int `json:"late_count"`
}

// AttendanceReportResponse reports per-event attendance for a team.
type AttendanceReportResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	TeamID     string           `json:"team_id"`
	EventID    string           `json:"event_id,omitempty"`
	ReportData AttendanceReport `json:"report_data"`
}
