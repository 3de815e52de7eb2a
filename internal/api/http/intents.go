package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/intent"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/session"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/urlutil"
)

// withoutCredentials strips user info from the intent's URL payloads so
// every way into the registry stores the same form of a URL.
func withoutCredentials(in intent.Intent) intent.Intent {
	in.Data = urlutil.StripUserInfo(in.Data)

	text := in.StringExtra(intent.ExtraText)
	if text != "" && urlutil.IsURL(text) {
		extras := make(map[string]any, len(in.Extras))
		for k, v := range in.Extras {
			extras[k] = v
		}
		extras[intent.ExtraText] = urlutil.StripUserInfo(text)
		in.Extras = extras
	}
	return in
}

func intentResponse(s session.Session, created bool) gin.H {
	resp := gin.H{
		"success": true,
		"created": created,
	}
	if created {
		resp["session"] = s.View(true)
	}
	return resp
}

// HandleIntent handles a launch intent. ?restoring=true marks a launch
// that restores saved state, which never opens a session.
func (h *Handlers) HandleIntent(c *gin.Context) {
	restoring, err := cast.ToBoolE(c.DefaultQuery("restoring", "false"))
	if err != nil {
		badRequest(c, "restoring must be a boolean")
		return
	}

	var in intent.Intent
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid intent: "+err.Error())
		return
	}

	var (
		s       session.Session
		created bool
	)
	err = h.run(c.Request.Context(), "intent", func(m *session.Manager) error {
		s, created = m.HandleIntent(withoutCredentials(in), restoring)
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, intentResponse(s, created))
}

// HandleNewIntent handles an intent delivered to the running browser
func (h *Handlers) HandleNewIntent(c *gin.Context) {
	var in intent.Intent
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid intent: "+err.Error())
		return
	}

	var (
		s       session.Session
		created bool
	)
	err := h.run(c.Request.Context(), "new_intent", func(m *session.Manager) error {
		s, created = m.HandleNewIntent(withoutCredentials(in))
		return nil
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, intentResponse(s, created))
}
