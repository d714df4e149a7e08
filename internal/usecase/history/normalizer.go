package history

import (
	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// NormalizeRecord converts an accepted candidate into the canonical
// MeetingRecord shape, filling every optional field with its default. It is
// total over accepted input: the validator has already guaranteed everything
// it depends on, so it never fails.
func NormalizeRecord(raw *entities.RawRecord) entities.MeetingRecord {
	createdAt, _ := recordTimestamp(raw)

	label := raw.ProjectLabel
	if label == "" {
		label = raw.ProjectID
	}
	if label == "" {
		label = entities.UnknownProjectLabel
	}

	kind := entities.SessionKindUnknown
	if raw.SessionKind != "" {
		// Legacy tags are kept verbatim here; folding into canonical
		// buckets is the stats aggregator's job.
		kind = entities.SessionKind(raw.SessionKind)
	}

	duration := 0
	if raw.DurationSeconds != nil && *raw.DurationSeconds > 0 {
		duration = *raw.DurationSeconds
	}

	counts := entities.MessageCounts{}
	if raw.MessageCounts != nil {
		counts = *raw.MessageCounts
	}

	status := entities.MeetingStatusCompleted
	if raw.Status == string(entities.MeetingStatusInProgress) {
		status = entities.MeetingStatusInProgress
	}

	return entities.MeetingRecord{
		ID:               raw.ID,
		OwnerID:          raw.OwnerID,
		ProjectLabel:     label,
		CreatedAt:        createdAt,
		SessionKind:      kind,
		DurationSeconds:  duration,
		MessageCounts:    counts,
		ParticipantNames: orEmpty(raw.ParticipantNames),
		ParticipantRoles: orEmpty(raw.ParticipantRoles),
		ParticipantIDs:   orEmpty(raw.ParticipantIDs),
		Transcript:       orEmptyTranscript(raw.Transcript),
		TopicsDiscussed:  orEmpty(raw.TopicsDiscussed),
		KeyInsights:      orEmpty(raw.KeyInsights),
		SummaryText:      raw.SummaryText,
		Status:           status,
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orEmptyTranscript(entries []entities.TranscriptEntry) []entities.TranscriptEntry {
	if entries == nil {
		return []entities.TranscriptEntry{}
	}
	return entries
}
