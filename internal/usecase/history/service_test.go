package history

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
	usecaseErrors "github.com/traineedesk/meeting-history/internal/usecase/errors"
)

func newTestService(records []entities.MeetingRecord) Service {
	reconcile := func(ctx context.Context, userID string) ([]entities.MeetingRecord, error) {
		return records, nil
	}
	cache := NewHistoryCache(reconcile, time.Second, clock.NewMock(), nil)
	return NewService(cache, nil)
}

func TestService_GetAllUserMeetings(t *testing.T) {
	svc := newTestService([]entities.MeetingRecord{cachedMeeting("m1"), cachedMeeting("m2")})

	records, err := svc.GetAllUserMeetings(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestService_GetAllUserMeetings_EmptyUserID(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.GetAllUserMeetings(context.Background(), "", false)
	require.ErrorIs(t, err, usecaseErrors.ErrEmptyUserID)
}

func TestService_GetRecentMeetings_TruncatesSortedSlice(t *testing.T) {
	svc := newTestService([]entities.MeetingRecord{
		cachedMeeting("m1"), cachedMeeting("m2"), cachedMeeting("m3"),
	})

	records, err := svc.GetRecentMeetings(context.Background(), "u1", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "m1", records[0].ID)

	// A limit beyond the set size returns everything.
	records, err = svc.GetRecentMeetings(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestService_GetRecentMeetings_InvalidLimit(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.GetRecentMeetings(context.Background(), "u1", 0)
	require.ErrorIs(t, err, usecaseErrors.ErrInvalidLimit)
}

func TestService_GetMeetingStats(t *testing.T) {
	rec := cachedMeeting("m1")
	rec.SummaryText = "done"
	svc := newTestService([]entities.MeetingRecord{rec})

	stats, err := svc.GetMeetingStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalMeetings)
	assert.Equal(t, 1, stats.WithSummary)
	assert.Equal(t, 1.0, stats.SummaryRate)
}

func TestService_ClearCache(t *testing.T) {
	var calls int
	reconcile := func(ctx context.Context, userID string) ([]entities.MeetingRecord, error) {
		calls++
		return nil, nil
	}
	cache := NewHistoryCache(reconcile, time.Second, clock.NewMock(), nil)
	svc := NewService(cache, nil)

	_, err := svc.GetAllUserMeetings(context.Background(), "u1", false)
	require.NoError(t, err)

	svc.ClearCache("u1")
	_, err = svc.GetAllUserMeetings(context.Background(), "u1", false)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}
