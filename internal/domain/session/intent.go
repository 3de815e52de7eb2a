package session

import (
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/intent"
	"go.uber.org/zap"
)

// Intent outcomes recorded in metrics and logs
const (
	outcomeCreated   = "created"
	outcomeHistory   = "history"
	outcomeRestoring = "restoring"
	outcomeLauncher  = "launcher"
	outcomeIgnored   = "ignored"
)

// HandleIntent creates a session for a launch intent. Intents re-delivered
// from the recent apps list and intents seen while restoring saved state
// are ignored.
func (m *Manager) HandleIntent(in intent.Intent, restoring bool) (Session, bool) {
	if in.LaunchedFromHistory() {
		m.recordIntent(in, outcomeHistory)
		return Session{}, false
	}
	if restoring {
		m.recordIntent(in, outcomeRestoring)
		return Session{}, false
	}
	return m.createSessionFromIntent(in)
}

// HandleNewIntent creates a session for an intent delivered to a running
// instance.
func (m *Manager) HandleNewIntent(in intent.Intent) (Session, bool) {
	return m.createSessionFromIntent(in)
}

func (m *Manager) createSessionFromIntent(in intent.Intent) (Session, bool) {
	var (
		s  Session
		ok bool
	)

	switch in.Action {
	case intent.ActionView:
		s, ok = m.createFromView(in)
	case intent.ActionSend:
		s, ok = m.createFromShare(in)
	case intent.ActionMain:
		// launcher start, the browser opens on its home screen
		m.recordIntent(in, outcomeLauncher)
		return Session{}, false
	}

	if !ok {
		m.recordIntent(in, outcomeIgnored)
		return Session{}, false
	}
	m.recordIntent(in, outcomeCreated)
	return s, true
}

func (m *Manager) createFromView(in intent.Intent) (Session, bool) {
	if in.Data == "" {
		return Session{}, false
	}

	source := SourceView
	blocking := true
	if in.HasExtra(intent.ExtraHomeScreen) {
		source = SourceHomeScreen
		blocking = in.BoolExtra(intent.ExtraBlockingEnabled, true)
	}

	var s Session
	if m.customTabs != nil && m.customTabs.IsCustomTabIntent(in) {
		s = newSession(SourceCustomTab, in.Data, CustomTabPayload{Config: m.customTabs.Parse(in)})
	} else {
		s = newSession(source, in.Data, PlainPayload{})
	}
	s.BlockingEnabled = blocking

	return m.add(s), true
}

func (m *Manager) createFromShare(in intent.Intent) (Session, bool) {
	text := in.StringExtra(intent.ExtraText)
	if text == "" {
		return Session{}, false
	}

	if m.classifier.IsURL(text) {
		return m.CreateSession(SourceShare, text), true
	}

	if m.searchURLs == nil {
		m.logger.Warn("Dropping shared text, no search engine configured")
		return Session{}, false
	}
	return m.CreateSearchSession(SourceShare, m.searchURLs.CreateSearchURL(text), text), true
}

func (m *Manager) recordIntent(in intent.Intent, outcome string) {
	if m.metrics != nil {
		m.metrics.RecordIntent(string(in.Action), outcome)
	}
	if outcome != outcomeCreated {
		m.logger.Debug("Intent ignored",
			zap.String("action", string(in.Action)),
			zap.String("reason", outcome),
		)
	}
}
