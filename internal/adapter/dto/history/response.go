package history

import "time"

// MeetingResponse represents one reconciled meeting record in responses.
type MeetingResponse struct {
	ID               string                    `json:"id"`
	ProjectLabel     string                    `json:"project_label"`
	CreatedAt        time.Time                 `json:"created_at"`
	SessionKind      string                    `json:"session_kind"`
	DurationSeconds  int                       `json:"duration_seconds"`
	MessageCounts    MessageCountsResponse     `json:"message_counts"`
	ParticipantNames []string                  `json:"participant_names"`
	ParticipantRoles []string                  `json:"participant_roles"`
	ParticipantIDs   []string                  `json:"participant_ids"`
	Transcript       []TranscriptEntryResponse `json:"transcript"`
	TopicsDiscussed  []string                  `json:"topics_discussed"`
	KeyInsights      []string                  `json:"key_insights"`
	SummaryText      string                    `json:"summary_text"`
	Status           string                    `json:"status"`
}

// MessageCountsResponse mirrors the exchange counters of one meeting.
type MessageCountsResponse struct {
	Total           int `json:"total"`
	FromUser        int `json:"from_user"`
	FromCounterpart int `json:"from_counterpart"`
}

// TranscriptEntryResponse is one exchange of a meeting transcript.
type TranscriptEntryResponse struct {
	Speaker string `json:"speaker"`
	Role    string `json:"role,omitempty"`
	Text    string `json:"text"`
}

// MeetingListResponse wraps a list of meetings.
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}

// StatsResponse represents derived statistics over a user's history.
type StatsResponse struct {
	TotalMeetings          int            `json:"total_meetings"`
	BySessionKind          map[string]int `json:"by_session_kind"`
	DistinctProjects       int            `json:"distinct_projects"`
	WithSummary            int            `json:"with_summary"`
	SummaryRate            float64        `json:"summary_rate"`
	AverageDurationSeconds float64        `json:"average_duration_seconds"`
}
