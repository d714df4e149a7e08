package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traineedesk/meeting-history/errors"
	historyDTO "github.com/traineedesk/meeting-history/internal/adapter/dto/history"
	"github.com/traineedesk/meeting-history/internal/adapter/presenter"
	usecaseErrors "github.com/traineedesk/meeting-history/internal/usecase/errors"
	historyUsecase "github.com/traineedesk/meeting-history/internal/usecase/history"
)

const defaultRecentLimit = 5

// History handles meeting-history HTTP requests.
type History struct {
	historyService historyUsecase.Service
	logger         *zap.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(historyService historyUsecase.Service, logger *zap.Logger) *History {
	return &History{
		historyService: historyService,
		logger:         logger,
	}
}

// ListMeetings handles GET /users/:user_id/meetings
func (h *History) ListMeetings(c echo.Context) error {
	var req historyDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	records, err := h.historyService.GetAllUserMeetings(c.Request().Context(), c.Param("user_id"), req.Refresh)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(records))
}

// RecentMeetings handles GET /users/:user_id/meetings/recent
func (h *History) RecentMeetings(c echo.Context) error {
	req := historyDTO.RecentMeetingsRequest{Limit: defaultRecentLimit}
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	records, err := h.historyService.GetRecentMeetings(c.Request().Context(), c.Param("user_id"), req.Limit)
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(records))
}

// MeetingStats handles GET /users/:user_id/meetings/stats
func (h *History) MeetingStats(c echo.Context) error {
	stats, err := h.historyService.GetMeetingStats(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return HandleError(h.logger, c, h.mapError(err))
	}

	return HandleSuccess(h.logger, c, presenter.ToStatsResponse(stats))
}

// ClearCache handles DELETE /cache. Callers use it after writing a record so
// the next read reflects the change. Without user_id it clears every entry.
func (h *History) ClearCache(c echo.Context) error {
	var req historyDTO.ClearCacheRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	h.historyService.ClearCache(req.UserID)

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"cleared": true,
	})
}

func (h *History) mapError(err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrEmptyUserID),
		stdErrors.Is(err, usecaseErrors.ErrInvalidLimit):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrInternal(err)
	}
}
