package presenter

import (
	"github.com/traineedesk/meeting-history/internal/adapter/dto/history"
	"github.com/traineedesk/meeting-history/internal/domain/entities"
)

// ToMeetingResponse converts a MeetingRecord entity to its response DTO.
func ToMeetingResponse(m *entities.MeetingRecord) *history.MeetingResponse {
	if m == nil {
		return nil
	}

	transcript := make([]history.TranscriptEntryResponse, len(m.Transcript))
	for i, entry := range m.Transcript {
		transcript[i] = history.TranscriptEntryResponse{
			Speaker: entry.Speaker,
			Role:    entry.Role,
			Text:    entry.Text,
		}
	}

	return &history.MeetingResponse{
		ID:              m.ID,
		ProjectLabel:    m.ProjectLabel,
		CreatedAt:       m.CreatedAt,
		SessionKind:     string(m.SessionKind),
		DurationSeconds: m.DurationSeconds,
		MessageCounts: history.MessageCountsResponse{
			Total:           m.MessageCounts.Total,
			FromUser:        m.MessageCounts.FromUser,
			FromCounterpart: m.MessageCounts.FromCounterpart,
		},
		ParticipantNames: m.ParticipantNames,
		ParticipantRoles: m.ParticipantRoles,
		ParticipantIDs:   m.ParticipantIDs,
		Transcript:       transcript,
		TopicsDiscussed:  m.TopicsDiscussed,
		KeyInsights:      m.KeyInsights,
		SummaryText:      m.SummaryText,
		Status:           string(m.Status),
	}
}

// ToMeetingListResponse converts a reconciled slice to the list DTO.
func ToMeetingListResponse(records []entities.MeetingRecord) *history.MeetingListResponse {
	meetings := make([]*history.MeetingResponse, len(records))
	for i := range records {
		meetings[i] = ToMeetingResponse(&records[i])
	}
	return &history.MeetingListResponse{
		Meetings: meetings,
		Total:    len(records),
	}
}

// ToStatsResponse converts MeetingStats to its response DTO.
func ToStatsResponse(s entities.MeetingStats) *history.StatsResponse {
	byKind := make(map[string]int, len(s.BySessionKind))
	for kind, count := range s.BySessionKind {
		byKind[string(kind)] = count
	}
	return &history.StatsResponse{
		TotalMeetings:          s.TotalMeetings,
		BySessionKind:          byKind,
		DistinctProjects:       s.DistinctProjects,
		WithSummary:            s.WithSummary,
		SummaryRate:            s.SummaryRate,
		AverageDurationSeconds: s.AverageDurationSeconds,
	}
}
