package entities

import "time"

// SessionKind is the canonical category of a training session.
type SessionKind string

const (
	SessionKindVoice           SessionKind = "voice"
	SessionKindVoiceTranscript SessionKind = "voice_with_transcript"
	SessionKindUnknown         SessionKind = "unknown"
)

// MeetingStatus describes whether a meeting is still running.
type MeetingStatus string

const (
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
)

// MessageCounts tracks exchange volume within one meeting.
type MessageCounts struct {
	Total           int `json:"total"`
	FromUser        int `json:"from_user"`
	FromCounterpart int `json:"from_counterpart"`
}

// TranscriptEntry is a single exchange within a meeting transcript.
type TranscriptEntry struct {
	Speaker string `json:"speaker"`
	Role    string `json:"role,omitempty"`
	Text    string `json:"text"`
}

// UnknownProjectLabel is the display label used when neither a project name
// nor a project id survived from the source record.
const UnknownProjectLabel = "Unknown Project"

// MeetingRecord is the canonical, fully-normalized meeting unit surfaced to
// the rest of the application. Every optional field is guaranteed non-nil
// after normalization, so callers never need to null-check.
type MeetingRecord struct {
	ID               string            `json:"id"`
	OwnerID          string            `json:"owner_id"`
	ProjectLabel     string            `json:"project_label"`
	CreatedAt        time.Time         `json:"created_at"`
	SessionKind      SessionKind       `json:"session_kind"`
	DurationSeconds  int               `json:"duration_seconds"`
	MessageCounts    MessageCounts     `json:"message_counts"`
	ParticipantNames []string          `json:"participant_names"`
	ParticipantRoles []string          `json:"participant_roles"`
	ParticipantIDs   []string          `json:"participant_ids"`
	Transcript       []TranscriptEntry `json:"transcript"`
	TopicsDiscussed  []string          `json:"topics_discussed"`
	KeyInsights      []string          `json:"key_insights"`
	SummaryText      string            `json:"summary_text"`
	Status           MeetingStatus     `json:"status"`
}

// HasSummary reports whether the meeting produced a written deliverable.
func (m *MeetingRecord) HasSummary() bool {
	return m.SummaryText != ""
}
