package history

import (
	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// sessionKindBuckets folds every tag the two sources have ever produced into
// its canonical bucket. Tags written by earlier client versions map onto the
// current categories instead of surfacing as separate buckets.
var sessionKindBuckets = map[string]entities.SessionKind{
	"voice":                 entities.SessionKindVoice,
	"voice-only":            entities.SessionKindVoice,
	"voice_only":            entities.SessionKindVoice,
	"audio":                 entities.SessionKindVoice,
	"call":                  entities.SessionKindVoice,
	"voice_with_transcript": entities.SessionKindVoiceTranscript,
	"voice-plus-transcript": entities.SessionKindVoiceTranscript,
	"voice-text":            entities.SessionKindVoiceTranscript,
	"chat_voice":            entities.SessionKindVoiceTranscript,
}

// CanonicalSessionKind maps a source tag onto its canonical bucket.
// Unrecognized tags count as unknown rather than polluting the breakdown.
func CanonicalSessionKind(tag entities.SessionKind) entities.SessionKind {
	if kind, ok := sessionKindBuckets[string(tag)]; ok {
		return kind
	}
	return entities.SessionKindUnknown
}

// ComputeStats derives aggregate counters from a reconciled meeting set.
// Pure function; all ratios are 0 when the set is empty.
func ComputeStats(records []entities.MeetingRecord) entities.MeetingStats {
	stats := entities.MeetingStats{
		BySessionKind: make(map[entities.SessionKind]int),
	}

	projects := make(map[string]struct{})
	totalDuration := 0
	for i := range records {
		rec := &records[i]
		stats.TotalMeetings++
		stats.BySessionKind[CanonicalSessionKind(rec.SessionKind)]++
		projects[rec.ProjectLabel] = struct{}{}
		if rec.HasSummary() {
			stats.WithSummary++
		}
		totalDuration += rec.DurationSeconds
	}

	stats.DistinctProjects = len(projects)
	stats.SummaryRate = safeRatio(stats.WithSummary, stats.TotalMeetings)
	stats.AverageDurationSeconds = safeRatio(totalDuration, stats.TotalMeetings)
	return stats
}

// safeRatio defines x/total as 0 when total is 0, so an empty history yields
// zeroed statistics instead of NaN.
func safeRatio(x, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(x) / float64(total)
}
