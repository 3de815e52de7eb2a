package search

import (
	"net/url"
	"strings"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/urlutil"
)

// Preferences supplies the engine the user picked
type Preferences interface {
	DefaultSearchEngineName() string
}

// Manager resolves engines and builds search URLs
type Manager struct {
	catalog *Catalog
	prefs   Preferences
}

// NewManager creates a manager over the catalog. prefs may be nil.
func NewManager(catalog *Catalog, prefs Preferences) *Manager {
	return &Manager{catalog: catalog, prefs: prefs}
}

// Engines returns a copy of the catalog entries
func (m *Manager) Engines() []Engine {
	engines := make([]Engine, len(m.catalog.Engines))
	copy(engines, m.catalog.Engines)
	return engines
}

// Engine finds an engine by id or case-insensitive name
func (m *Manager) Engine(idOrName string) (Engine, bool) {
	for _, e := range m.catalog.Engines {
		if e.ID == idOrName || strings.EqualFold(e.Name, idOrName) {
			return e, true
		}
	}
	return Engine{}, false
}

// DefaultEngine returns the user's engine, then the catalog default, then
// the first catalog entry.
func (m *Manager) DefaultEngine() Engine {
	if m.prefs != nil {
		if e, ok := m.Engine(m.prefs.DefaultSearchEngineName()); ok {
			return e
		}
	}
	if e, ok := m.Engine(m.catalog.Default); ok {
		return e
	}
	return m.catalog.Engines[0]
}

// CreateSearchURL builds a results URL for the terms on the default engine
func (m *Manager) CreateSearchURL(terms string) string {
	return m.DefaultEngine().BuildSearchURL(terms)
}

// SearchTermsOrURL returns the terms of a web search results URL produced
// by a catalog engine, or the URL itself.
func (m *Manager) SearchTermsOrURL(rawURL string) string {
	if !urlutil.IsHTTPOrHTTPS(rawURL) {
		return rawURL
	}

	engine, ok := m.engineForURL(rawURL)
	if !ok {
		return rawURL
	}

	param := engine.TermsParamName()
	if param == "" || !strings.Contains(rawURL, param) {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if terms := u.Query().Get(param); terms != "" {
		return terms
	}
	return rawURL
}

func (m *Manager) engineForURL(rawURL string) (Engine, bool) {
	snippet := urlutil.RepresentativeSnippet(rawURL)
	for _, e := range m.catalog.Engines {
		if strings.Contains(snippet, strings.ToLower(e.Name)) {
			return e, true
		}
	}
	return Engine{}, false
}
