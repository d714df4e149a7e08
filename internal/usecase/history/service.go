package history

import (
	"context"

	"go.uber.org/zap"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
	usecaseErrors "github.com/traineedesk/meeting-history/internal/usecase/errors"
)

// Service is the meeting-history surface consumed by the rest of the
// application. Data-quality problems never surface as errors: at worst a
// caller receives an empty or partial slice and zeroed statistics, so the UI
// can always render something.
type Service interface {
	GetAllUserMeetings(ctx context.Context, userID string, forceRefresh bool) ([]entities.MeetingRecord, error)
	GetRecentMeetings(ctx context.Context, userID string, limit int) ([]entities.MeetingRecord, error)
	GetMeetingStats(ctx context.Context, userID string) (entities.MeetingStats, error)
	ClearCache(userID string)
}

type historyService struct {
	cache  *HistoryCache
	logger *zap.Logger
}

// NewService creates the meeting-history service facade.
func NewService(cache *HistoryCache, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &historyService{cache: cache, logger: logger}
}

// GetAllUserMeetings returns the user's full reconciled history, newest first.
func (s *historyService) GetAllUserMeetings(ctx context.Context, userID string, forceRefresh bool) ([]entities.MeetingRecord, error) {
	if userID == "" {
		return nil, usecaseErrors.ErrEmptyUserID
	}
	return s.cache.Get(ctx, userID, forceRefresh), nil
}

// GetRecentMeetings returns the first limit records of the reconciled
// history, which is already sorted by recency.
func (s *historyService) GetRecentMeetings(ctx context.Context, userID string, limit int) ([]entities.MeetingRecord, error) {
	if userID == "" {
		return nil, usecaseErrors.ErrEmptyUserID
	}
	if limit <= 0 {
		return nil, usecaseErrors.ErrInvalidLimit
	}
	records := s.cache.Get(ctx, userID, false)
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// GetMeetingStats computes aggregate statistics over the current reconciled
// set, triggering a reconciliation first if the cached one is stale.
func (s *historyService) GetMeetingStats(ctx context.Context, userID string) (entities.MeetingStats, error) {
	if userID == "" {
		return entities.MeetingStats{}, usecaseErrors.ErrEmptyUserID
	}
	return ComputeStats(s.cache.Get(ctx, userID, false)), nil
}

// ClearCache invalidates the user's cached history, or every user's when
// userID is empty. Callers use it after writing a record so the next read
// reflects the change immediately.
func (s *historyService) ClearCache(userID string) {
	if userID == "" {
		s.cache.InvalidateAll()
		return
	}
	s.cache.Invalidate(userID)
}
