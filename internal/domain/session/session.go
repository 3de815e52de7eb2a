package session

import (
	"time"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/customtab"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/id"
)

// Source records how a session was created
type Source string

const (
	SourceView        Source = "view"
	SourceHomeScreen  Source = "home_screen"
	SourceShare       Source = "share"
	SourceSearch      Source = "search"
	SourceUserEntered Source = "user_entered"
	SourceMenu        Source = "menu"
	SourceCustomTab   Source = "custom_tab"
	SourceNone        Source = "none"
)

// ParseSource converts a wire value to a Source
func ParseSource(s string) (Source, bool) {
	switch src := Source(s); src {
	case SourceView, SourceHomeScreen, SourceShare, SourceSearch,
		SourceUserEntered, SourceMenu, SourceCustomTab, SourceNone:
		return src, true
	default:
		return "", false
	}
}

// PayloadKind tags the origin-specific data a session carries
type PayloadKind string

const (
	KindPlain     PayloadKind = "plain"
	KindSearch    PayloadKind = "search"
	KindCustomTab PayloadKind = "custom_tab"
)

// Payload is one of PlainPayload, SearchPayload or CustomTabPayload
type Payload interface {
	Kind() PayloadKind
}

// PlainPayload carries nothing beyond the URL
type PlainPayload struct{}

// SearchPayload records the terms a search session was created for
type SearchPayload struct {
	Terms string
}

// CustomTabPayload holds the chrome requested by the launching application
type CustomTabPayload struct {
	Config *customtab.Config
}

func (PlainPayload) Kind() PayloadKind     { return KindPlain }
func (SearchPayload) Kind() PayloadKind    { return KindSearch }
func (CustomTabPayload) Kind() PayloadKind { return KindCustomTab }

// Session is one browsing context. Values are immutable once published;
// the Manager replaces them instead of editing them.
type Session struct {
	ID              string
	Source          Source
	URL             string
	BlockingEnabled bool
	CreatedAt       time.Time
	Payload         Payload
}

func newSession(source Source, url string, payload Payload) Session {
	return Session{
		ID:              id.NewSessionID().String(),
		Source:          source,
		URL:             url,
		BlockingEnabled: true,
		CreatedAt:       time.Now(),
		Payload:         payload,
	}
}

// Kind returns the payload tag
func (s Session) Kind() PayloadKind {
	if s.Payload == nil {
		return KindPlain
	}
	return s.Payload.Kind()
}

// SearchTerms returns the terms for sessions created by a search
func (s Session) SearchTerms() (string, bool) {
	p, ok := s.Payload.(SearchPayload)
	return p.Terms, ok
}

// CustomTabConfig returns the chrome configuration for custom tab sessions
func (s Session) CustomTabConfig() (*customtab.Config, bool) {
	p, ok := s.Payload.(CustomTabPayload)
	return p.Config, ok
}

// IsCustomTab reports whether the session was opened as a custom tab
func (s Session) IsCustomTab() bool {
	return s.Kind() == KindCustomTab
}

// View is the transport form of a session
type View struct {
	ID              string            `json:"id"`
	Source          Source            `json:"source"`
	URL             string            `json:"url"`
	BlockingEnabled bool              `json:"blocking_enabled"`
	CreatedAt       time.Time         `json:"created_at"`
	Kind            PayloadKind       `json:"kind"`
	SearchTerms     string            `json:"search_terms,omitempty"`
	CustomTab       *customtab.Config `json:"custom_tab,omitempty"`
	Current         bool              `json:"current"`
}

// View returns the transport form of the session
func (s Session) View(current bool) View {
	v := View{
		ID:              s.ID,
		Source:          s.Source,
		URL:             s.URL,
		BlockingEnabled: s.BlockingEnabled,
		CreatedAt:       s.CreatedAt,
		Kind:            s.Kind(),
		Current:         current,
	}
	if terms, ok := s.SearchTerms(); ok {
		v.SearchTerms = terms
	}
	if cfg, ok := s.CustomTabConfig(); ok {
		v.CustomTab = cfg
	}
	return v
}
