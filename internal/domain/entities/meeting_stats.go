package entities

// MeetingStats holds derived aggregate counters over a user's reconciled
// meeting history. All ratios are defined as 0 when TotalMeetings is 0.
type MeetingStats struct {
	TotalMeetings    int                 `json:"total_meetings"`
	BySessionKind    map[SessionKind]int `json:"by_session_kind"`
	DistinctProjects int                 `json:"distinct_projects"`
	WithSummary      int                 `json:"with_summary"`

	// SummaryRate is WithSummary / TotalMeetings.
	SummaryRate float64 `json:"summary_rate"`
	// AverageDurationSeconds is the mean duration across the set.
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
}
