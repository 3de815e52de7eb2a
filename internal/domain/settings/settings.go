// Package settings holds the user preferences the session backend reads:
// search suggestions and the default search engine.
//
// Values live in memory only; storing them is left to the host.
package settings

import "sync"

// Defaults seeds a new Store
type Defaults struct {
	SearchSuggestions   bool
	DefaultSearchEngine string
}

// Store is an in-memory preference store, safe for concurrent use
type Store struct {
	mu                   sync.RWMutex
	showSuggestions      bool
	userToggledSuggested bool
	defaultEngine        string
}

// Snapshot is a point-in-time copy of the preferences
type Snapshot struct {
	SearchSuggestionsEnabled bool   `json:"search_suggestions_enabled"`
	UserToggledSuggestions   bool   `json:"user_toggled_search_suggestions"`
	DefaultSearchEngine      string `json:"default_search_engine"`
}

// NewStore creates a store seeded with defaults
func NewStore(defaults Defaults) *Store {
	return &Store{
		showSuggestions: defaults.SearchSuggestions,
		defaultEngine:   defaults.DefaultSearchEngine,
	}
}

// SearchSuggestionsEnabled reports whether query suggestions may be fetched
func (s *Store) SearchSuggestionsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showSuggestions
}

// HasUserToggledSearchSuggestions reports whether the user ever answered
// the suggestions prompt.
func (s *Store) HasUserToggledSearchSuggestions() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userToggledSuggested
}

// EnableSearchSuggestions turns suggestions on
func (s *Store) EnableSearchSuggestions() {
	s.setSuggestions(true)
}

// DisableSearchSuggestions turns suggestions off
func (s *Store) DisableSearchSuggestions() {
	s.setSuggestions(false)
}

func (s *Store) setSuggestions(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userToggledSuggested = true
	s.showSuggestions = enabled
}

// DefaultSearchEngineName returns the engine the user picked, or ""
func (s *Store) DefaultSearchEngineName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultEngine
}

// SetDefaultSearchEngineName records the user's engine
func (s *Store) SetDefaultSearchEngineName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultEngine = name
}

// Snapshot returns a copy of all preferences
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		SearchSuggestionsEnabled: s.showSuggestions,
		UserToggledSuggestions:   s.userToggledSuggested,
		DefaultSearchEngine:      s.defaultEngine,
	}
}
