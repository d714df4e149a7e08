package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traineedesk/meeting-history/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	historyHandler *History
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, historyHandler *History) *Router {
	return &Router{
		cfg:            cfg,
		historyHandler: historyHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupHistoryRoutes(v1)
}

// setupHistoryRoutes configures meeting-history routes
func (rt *Router) setupHistoryRoutes(g *echo.Group) {
	users := g.Group("/users/:user_id")
	users.GET("/meetings", rt.historyHandler.ListMeetings)
	users.GET("/meetings/recent", rt.historyHandler.RecentMeetings)
	users.GET("/meetings/stats", rt.historyHandler.MeetingStats)

	g.DELETE("/cache", rt.historyHandler.ClearCache)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
