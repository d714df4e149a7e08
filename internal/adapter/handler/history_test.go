package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traineedesk/meeting-history/internal/domain/entities"
	usecaseErrors "github.com/traineedesk/meeting-history/internal/usecase/errors"
	historyUsecase "github.com/traineedesk/meeting-history/internal/usecase/history"
	"github.com/traineedesk/meeting-history/pkg/validator"
)

// fakeHistoryService satisfies history.Service for handler tests.
type fakeHistoryService struct {
	records      []entities.MeetingRecord
	stats        entities.MeetingStats
	err          error
	lastUserID   string
	lastRefresh  bool
	lastLimit    int
	clearedUsers []string
}

func (f *fakeHistoryService) GetAllUserMeetings(_ context.Context, userID string, forceRefresh bool) ([]entities.MeetingRecord, error) {
	f.lastUserID = userID
	f.lastRefresh = forceRefresh
	return f.records, f.err
}

func (f *fakeHistoryService) GetRecentMeetings(_ context.Context, userID string, limit int) ([]entities.MeetingRecord, error) {
	f.lastUserID = userID
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeHistoryService) GetMeetingStats(_ context.Context, userID string) (entities.MeetingStats, error) {
	f.lastUserID = userID
	return f.stats, f.err
}

func (f *fakeHistoryService) ClearCache(userID string) {
	f.clearedUsers = append(f.clearedUsers, userID)
}

var _ historyUsecase.Service = (*fakeHistoryService)(nil)

func newHistoryContext(t *testing.T, method, target, paramUserID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramUserID != "" {
		c.SetParamNames("user_id")
		c.SetParamValues(paramUserID)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHistoryListMeetings(t *testing.T) {
	svc := &fakeHistoryService{records: []entities.MeetingRecord{
		{ID: "m1", OwnerID: "u1", ProjectLabel: "Acme", CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
	}}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodGet, "/v1/users/u1/meetings?refresh=true", "u1")
	require.NoError(t, h.ListMeetings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.lastUserID)
	assert.True(t, svc.lastRefresh)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total"])
}

func TestHistoryListMeetings_EmptyUserID(t *testing.T) {
	svc := &fakeHistoryService{err: usecaseErrors.ErrEmptyUserID}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodGet, "/v1/users//meetings", "")
	require.NoError(t, h.ListMeetings(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryRecentMeetings_DefaultLimit(t *testing.T) {
	svc := &fakeHistoryService{records: []entities.MeetingRecord{{ID: "m1", OwnerID: "u1"}}}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodGet, "/v1/users/u1/meetings/recent", "u1")
	require.NoError(t, h.RecentMeetings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultRecentLimit, svc.lastLimit)
}

func TestHistoryRecentMeetings_ExplicitLimit(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodGet, "/v1/users/u1/meetings/recent?limit=3", "u1")
	require.NoError(t, h.RecentMeetings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastLimit)
}

func TestHistoryRecentMeetings_LimitOutOfRange(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodGet, "/v1/users/u1/meetings/recent?limit=500", "u1")
	require.NoError(t, h.RecentMeetings(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.lastUserID)
}

func TestHistoryMeetingStats(t *testing.T) {
	svc := &fakeHistoryService{stats: entities.MeetingStats{
		TotalMeetings: 2,
		WithSummary:   1,
		SummaryRate:   0.5,
	}}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodGet, "/v1/users/u1/meetings/stats", "u1")
	require.NoError(t, h.MeetingStats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_meetings"])
	assert.EqualValues(t, 0.5, data["summary_rate"])
}

func TestHistoryClearCache_SingleUser(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodDelete, "/v1/cache?user_id=u1", "")
	require.NoError(t, h.ClearCache(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"u1"}, svc.clearedUsers)
}

func TestHistoryClearCache_AllUsers(t *testing.T) {
	svc := &fakeHistoryService{}
	h := NewHistoryHandler(svc, zap.NewNop())

	c, rec := newHistoryContext(t, http.MethodDelete, "/v1/cache", "")
	require.NoError(t, h.ClearCache(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{""}, svc.clearedUsers)
}
