package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/session"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/urlutil"
)

type createSessionRequest struct {
	Source string `json:"source" binding:"required"`
	URL    string `json:"url" binding:"required"`
}

type createSearchSessionRequest struct {
	Source string `json:"source" binding:"required"`
	URL    string `json:"url"`
	Terms  string `json:"terms" binding:"required"`
}

type loadRequest struct {
	Input string `json:"input" binding:"required"`
}

type updateURLRequest struct {
	URL string `json:"url" binding:"required"`
}

func snapshotResponse(snap session.Snapshot) gin.H {
	return gin.H{
		"success":    true,
		"sessions":   snap.Views(),
		"current_id": snap.CurrentID,
		"version":    snap.Version,
	}
}

func sessionResponse(s session.Session, current bool) gin.H {
	return gin.H{
		"success": true,
		"session": s.View(current),
	}
}

// ListSessions returns the current snapshot
func (h *Handlers) ListSessions(c *gin.Context) {
	var snap session.Snapshot
	err := h.run(c.Request.Context(), "list", func(m *session.Manager) error {
		snap = m.Sessions()
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshotResponse(snap))
}

// CurrentSession returns the active session
func (h *Handlers) CurrentSession(c *gin.Context) {
	var s session.Session
	err := h.run(c.Request.Context(), "current", func(m *session.Manager) error {
		var err error
		s, err = m.CurrentSession()
		return err
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s, true))
}

// GetSession returns one session
func (h *Handlers) GetSession(c *gin.Context) {
	id := c.Param("id")

	var (
		s       session.Session
		current bool
	)
	err := h.run(c.Request.Context(), "get", func(m *session.Manager) error {
		var err error
		s, err = m.SessionByID(id)
		current = err == nil && m.IsCurrentSession(s)
		return err
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s, current))
}

// CreateSession opens a plain session and makes it active
func (h *Handlers) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}
	source, ok := session.ParseSource(req.Source)
	if !ok {
		badRequest(c, "unknown source: "+req.Source)
		return
	}

	target := urlutil.StripUserInfo(req.URL)

	var s session.Session
	err := h.run(c.Request.Context(), "create", func(m *session.Manager) error {
		s = m.CreateSession(source, target)
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(s, true))
}

// CreateSearchSession opens a session for a search. The results URL is
// built from the default engine when the request leaves it out.
func (h *Handlers) CreateSearchSession(c *gin.Context) {
	var req createSearchSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}
	source, ok := session.ParseSource(req.Source)
	if !ok {
		badRequest(c, "unknown source: "+req.Source)
		return
	}

	target := urlutil.StripUserInfo(req.URL)
	if target == "" {
		target = h.engines.CreateSearchURL(req.Terms)
	}

	var s session.Session
	err := h.run(c.Request.Context(), "create_search", func(m *session.Manager) error {
		s = m.CreateSearchSession(source, target, req.Terms)
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(s, true))
}

// LoadInput opens a session for text typed into the URL bar. URLs are
// normalized and loaded; anything else becomes a search on the default
// engine.
func (h *Handlers) LoadInput(c *gin.Context) {
	var req loadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}
	input := strings.TrimSpace(req.Input)
	if input == "" {
		badRequest(c, "input is required")
		return
	}

	var s session.Session
	if !urlutil.IsURL(input) {
		searchURL := h.engines.CreateSearchURL(input)
		err := h.run(c.Request.Context(), "load_search", func(m *session.Manager) error {
			s = m.CreateSearchSession(session.SourceUserEntered, searchURL, input)
			return nil
		})
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, sessionResponse(s, true))
		return
	}

	target := urlutil.StripUserInfo(urlutil.Normalize(input))
	u, err := url.Parse(target)
	if err != nil || !urlutil.IsSupportedProtocol(u.Scheme) {
		badRequest(c, "unsupported protocol: "+input)
		return
	}

	err = h.run(c.Request.Context(), "load_url", func(m *session.Manager) error {
		s = m.CreateSession(session.SourceUserEntered, target)
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(s, true))
}

// SelectSession makes a session active
func (h *Handlers) SelectSession(c *gin.Context) {
	id := c.Param("id")

	var snap session.Snapshot
	err := h.run(c.Request.Context(), "select", func(m *session.Manager) error {
		if err := m.SelectSessionByID(id); err != nil {
			return err
		}
		snap = m.Sessions()
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshotResponse(snap))
}

// UpdateURL records a navigation inside a session
func (h *Handlers) UpdateURL(c *gin.Context) {
	id := c.Param("id")

	var req updateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	var (
		s       session.Session
		current bool
	)
	err := h.run(c.Request.Context(), "update_url", func(m *session.Manager) error {
		var err error
		s, err = m.UpdateURL(id, urlutil.StripUserInfo(req.URL))
		current = err == nil && m.IsCurrentSession(s)
		return err
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(s, current))
}

// RemoveSession closes a session. Unknown ids are not an error.
func (h *Handlers) RemoveSession(c *gin.Context) {
	id := c.Param("id")

	var (
		removed bool
		snap    session.Snapshot
	)
	err := h.run(c.Request.Context(), "remove", func(m *session.Manager) error {
		removed = m.HasSessionWithID(id)
		m.RemoveSession(id)
		snap = m.Sessions()
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := snapshotResponse(snap)
	resp["removed"] = removed
	c.JSON(http.StatusOK, resp)
}

// RemoveCurrentSession closes the active session, if any
func (h *Handlers) RemoveCurrentSession(c *gin.Context) {
	var (
		removed bool
		snap    session.Snapshot
	)
	err := h.run(c.Request.Context(), "remove_current", func(m *session.Manager) error {
		removed = m.HasSession()
		m.RemoveCurrentSession()
		snap = m.Sessions()
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := snapshotResponse(snap)
	resp["removed"] = removed
	c.JSON(http.StatusOK, resp)
}

// RemoveAllSessions closes every session
func (h *Handlers) RemoveAllSessions(c *gin.Context) {
	var snap session.Snapshot
	err := h.run(c.Request.Context(), "remove_all", func(m *session.Manager) error {
		m.RemoveAllSessions()
		snap = m.Sessions()
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshotResponse(snap))
}
