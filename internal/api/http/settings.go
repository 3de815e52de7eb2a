package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSettings returns every preference
func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"settings": h.settings.Snapshot(),
	})
}

// GetSearchSuggestions reports the suggestion preference
func (h *Handlers) GetSearchSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"enabled":      h.settings.SearchSuggestionsEnabled(),
		"user_toggled": h.settings.HasUserToggledSearchSuggestions(),
	})
}

// SetSearchSuggestions turns suggestions on or off
func (h *Handlers) SetSearchSuggestions(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	if *req.Enabled {
		h.settings.EnableSearchSuggestions()
	} else {
		h.settings.DisableSearchSuggestions()
	}
	h.GetSearchSuggestions(c)
}

// SetSearchEngine picks the default engine by id or name
func (h *Handlers) SetSearchEngine(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	engine, ok := h.engines.Engine(req.Name)
	if !ok {
		badRequest(c, "unknown search engine: "+req.Name)
		return
	}
	h.settings.SetDefaultSearchEngineName(engine.Name)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"engine":  engine,
	})
}
