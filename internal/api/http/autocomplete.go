package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDomains returns the custom autocomplete list
func (h *Handlers) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"domains": h.domains.List(),
	})
}

// AddDomain appends a domain
func (h *Handlers) AddDomain(c *gin.Context) {
	var req struct {
		Domain string `json:"domain" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	domain, err := h.domains.Add(req.Domain)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"domain":  domain,
		"domains": h.domains.List(),
	})
}

// RemoveDomains deletes the listed domains
func (h *Handlers) RemoveDomains(c *gin.Context) {
	var req struct {
		Domains []string `json:"domains" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	removed := h.domains.Remove(req.Domains...)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"removed": removed,
		"domains": h.domains.List(),
	})
}

// MoveDomain reorders the list
func (h *Handlers) MoveDomain(c *gin.Context) {
	var req struct {
		From *int `json:"from" binding:"required"`
		To   *int `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.domains.Move(*req.From, *req.To); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"domains": h.domains.List(),
	})
}

// CompleteDomain returns the completion for ?q=
func (h *Handlers) CompleteDomain(c *gin.Context) {
	completion, ok := h.domains.Complete(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"found":      ok,
		"completion": completion,
	})
}
