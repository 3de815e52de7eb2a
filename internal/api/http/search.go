package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/resilience"
)

// ListEngines returns the catalog and the engine in use
func (h *Handlers) ListEngines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"engines": h.engines.Engines(),
		"default": h.engines.DefaultEngine().ID,
	})
}

// SearchURL builds the results URL for ?q=
func (h *Handlers) SearchURL(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		badRequest(c, "q is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     h.engines.CreateSearchURL(q),
	})
}

// SearchTerms recovers the search terms from ?url=
func (h *Handlers) SearchTerms(c *gin.Context) {
	u := c.Query("url")
	if u == "" {
		badRequest(c, "url is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  h.engines.SearchTermsOrURL(u),
	})
}

// Suggestions proxies the default engine's suggestion endpoint for ?q=
func (h *Handlers) Suggestions(c *gin.Context) {
	q := c.Query("q")

	suggestions, err := h.suggester.Suggestions(c.Request.Context(), q)
	if err != nil {
		status, code := http.StatusBadGateway, "upstream"
		if errors.Is(err, resilience.ErrCircuitOpen) {
			status, code = http.StatusServiceUnavailable, "unavailable"
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"query":       q,
		"suggestions": suggestions,
	})
}
