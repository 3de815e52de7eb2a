package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/autocomplete"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/search"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/session"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/settings"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	loop      *session.Loop
	engines   *search.Manager
	suggester *search.Suggester
	settings  *settings.Store
	domains   *autocomplete.Domains
	metrics   *monitoring.Metrics
	tracker   *HandlerMetrics
	logger    *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(
	loop *session.Loop,
	engines *search.Manager,
	suggester *search.Suggester,
	settingsStore *settings.Store,
	domains *autocomplete.Domains,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		loop:      loop,
		engines:   engines,
		suggester: suggester,
		settings:  settingsStore,
		domains:   domains,
		metrics:   metrics,
		tracker:   NewHandlerMetrics(metrics),
		logger:    logger,
	}
}

// Register mounts every route on the router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	sessions := router.Group("/sessions")
	{
		sessions.GET("", h.ListSessions)
		sessions.POST("", h.CreateSession)
		sessions.DELETE("", h.RemoveAllSessions)
		sessions.GET("/current", h.CurrentSession)
		sessions.DELETE("/current", h.RemoveCurrentSession)
		sessions.POST("/search", h.CreateSearchSession)
		sessions.POST("/load", h.LoadInput)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.RemoveSession)
		sessions.POST("/:id/select", h.SelectSession)
		sessions.PUT("/:id/url", h.UpdateURL)
	}

	router.POST("/intents", h.HandleIntent)
	router.POST("/intents/new", h.HandleNewIntent)

	searchGroup := router.Group("/search")
	{
		searchGroup.GET("/engines", h.ListEngines)
		searchGroup.GET("/url", h.SearchURL)
		searchGroup.GET("/terms", h.SearchTerms)
		searchGroup.GET("/suggestions", h.Suggestions)
	}

	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("", h.GetSettings)
		settingsGroup.GET("/search-suggestions", h.GetSearchSuggestions)
		settingsGroup.PUT("/search-suggestions", h.SetSearchSuggestions)
		settingsGroup.PUT("/search-engine", h.SetSearchEngine)
	}

	ac := router.Group("/autocomplete")
	{
		ac.GET("/domains", h.ListDomains)
		ac.POST("/domains", h.AddDomain)
		ac.DELETE("/domains", h.RemoveDomains)
		ac.POST("/domains/move", h.MoveDomain)
		ac.GET("/complete", h.CompleteDomain)
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Focus Browser sessions",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	var count int
	err := h.loop.Do(c.Request.Context(), func(m *session.Manager) error {
		count = m.Len()
		return nil
	})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	resp := gin.H{
		"status":   "healthy",
		"sessions": count,
		"engine":   h.engines.DefaultEngine().Name,
	}
	if h.metrics != nil {
		resp["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, resp)
}

// run submits fn to the session loop and records its timing
func (h *Handlers) run(ctx context.Context, operation string, fn func(*session.Manager) error) error {
	done := h.tracker.TrackSessionOperation(operation)
	err := h.loop.Do(ctx, fn)
	done(err)
	return err
}

// errorCode maps an error to the stable code clients switch on
func errorCode(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return "not_found"
	case errors.Is(err, session.ErrNoActiveSession):
		return "no_active_session"
	case errors.Is(err, session.ErrLoopClosed):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, autocomplete.ErrInvalidDomain), errors.Is(err, autocomplete.ErrOutOfRange):
		return "invalid_argument"
	case errors.Is(err, autocomplete.ErrDuplicateDomain):
		return "already_exists"
	default:
		return "internal"
	}
}

func statusFor(code string) int {
	switch code {
	case "not_found", "no_active_session":
		return http.StatusNotFound
	case "unavailable":
		return http.StatusServiceUnavailable
	case "timeout":
		return http.StatusGatewayTimeout
	case "invalid_argument":
		return http.StatusBadRequest
	case "already_exists":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error envelope for err
func (h *Handlers) fail(c *gin.Context, err error) {
	code := errorCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

// badRequest writes a 400 envelope
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   msg,
		"code":    "invalid_argument",
	})
}
