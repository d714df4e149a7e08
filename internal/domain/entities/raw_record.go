package entities

// RecordSource identifies which backing store produced a raw candidate.
// Provenance is carried for diagnostics and dedupe precedence only; it is
// never surfaced to callers.
type RecordSource string

const (
	SourceRemoteStore  RecordSource = "remote_store"
	SourceLocalJournal RecordSource = "local_journal"
)

// RawRecord is a loosely-shaped meeting candidate as reported by either the
// remote store or the local journal. Nothing about it is trusted: fields may
// be missing, timestamps arrive as strings, and journal entries may be
// partially decoded garbage. Candidates cross into MeetingRecord only after
// passing validation and normalization.
type RawRecord struct {
	Source RecordSource `json:"-"`

	ID           string `json:"id"`
	OwnerID      string `json:"owner_id"`
	ProjectLabel string `json:"project_label"`
	// ProjectID is the fallback project identity used when the human-readable
	// label is absent.
	ProjectID string `json:"project_id"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	SessionKind      string            `json:"session_kind"`
	DurationSeconds  *int              `json:"duration_seconds"`
	MessageCounts    *MessageCounts    `json:"message_counts"`
	ParticipantNames []string          `json:"participant_names"`
	ParticipantRoles []string          `json:"participant_roles"`
	ParticipantIDs   []string          `json:"participant_ids"`
	Transcript       []TranscriptEntry `json:"transcript"`
	TopicsDiscussed  []string          `json:"topics_discussed"`
	KeyInsights      []string          `json:"key_insights"`
	SummaryText      string            `json:"summary_text"`
	Status           string            `json:"status"`
}
