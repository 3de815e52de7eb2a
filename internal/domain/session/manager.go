package session

import (
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/customtab"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/intent"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/urlutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomTabParser recognizes and decodes custom tab intents
type CustomTabParser interface {
	IsCustomTabIntent(in intent.Intent) bool
	Parse(in intent.Intent) *customtab.Config
}

// URLClassifier decides whether shared text is a URL
type URLClassifier interface {
	IsURL(text string) bool
}

// URLClassifierFunc adapts a function to URLClassifier
type URLClassifierFunc func(text string) bool

func (f URLClassifierFunc) IsURL(text string) bool { return f(text) }

// SearchURLBuilder turns free text into a search results URL
type SearchURLBuilder interface {
	CreateSearchURL(terms string) string
}

// Observer receives every published snapshot
type Observer func(Snapshot)

// Subscription identifies a registered observer
type Subscription struct {
	ID      string
	manager *Manager
}

// Cancel stops delivery to the observer. Safe to call more than once.
func (s Subscription) Cancel() {
	if s.manager != nil {
		s.manager.unsubscribe(s.ID)
	}
}

type subscriber struct {
	id string
	fn Observer
}

// Manager is the session registry. It is not safe for concurrent use;
// share it between goroutines through a Loop.
type Manager struct {
	sessions  []Session
	currentID string
	version   uint64
	subs      []subscriber

	customTabs CustomTabParser
	classifier URLClassifier
	searchURLs SearchURLBuilder
	logger     *zap.Logger
	metrics    *monitoring.Metrics
}

// NewManager creates an empty registry. A nil classifier uses
// urlutil.IsURL; a nil customTabs treats no intent as a custom tab.
func NewManager(customTabs CustomTabParser, classifier URLClassifier, searchURLs SearchURLBuilder) *Manager {
	if classifier == nil {
		classifier = URLClassifierFunc(urlutil.IsURL)
	}
	return &Manager{
		customTabs: customTabs,
		classifier: classifier,
		searchURLs: searchURLs,
		logger:     zap.NewNop(),
	}
}

// WithLogger sets the logger
func (m *Manager) WithLogger(logger *zap.Logger) *Manager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithMetrics adds metrics tracking to the manager
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// Subscribe registers fn for every future snapshot. Observers run on the
// goroutine that changed the registry and must not call back into a Loop.
func (m *Manager) Subscribe(fn Observer) Subscription {
	sub := subscriber{id: uuid.New().String(), fn: fn}
	m.subs = append(m.subs, sub)
	return Subscription{ID: sub.id, manager: m}
}

func (m *Manager) unsubscribe(id string) {
	for i, sub := range m.subs {
		if sub.id == id {
			m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
			return
		}
	}
}

// Sessions returns the current snapshot
func (m *Manager) Sessions() Snapshot {
	list := make([]Session, len(m.sessions))
	copy(list, m.sessions)
	return Snapshot{Sessions: list, CurrentID: m.currentID, Version: m.version}
}

// CreateSession appends a plain session and makes it active
func (m *Manager) CreateSession(source Source, url string) Session {
	return m.add(newSession(source, url, PlainPayload{}))
}

// CreateSearchSession appends a session for a search and makes it active
func (m *Manager) CreateSearchSession(source Source, url, searchTerms string) Session {
	return m.add(newSession(source, url, SearchPayload{Terms: searchTerms}))
}

func (m *Manager) add(s Session) Session {
	next := make([]Session, len(m.sessions), len(m.sessions)+1)
	copy(next, m.sessions)
	next = append(next, s)

	m.currentID = s.ID
	if m.metrics != nil {
		m.metrics.IncSessionsCreated(string(s.Source))
	}
	m.logger.Debug("Session created",
		logging.SessionID(s.ID),
		logging.Source(string(s.Source)),
		zap.String("kind", string(s.Kind())),
	)
	m.publish(next)
	return s
}

// HasSession reports whether any session exists
func (m *Manager) HasSession() bool {
	return len(m.sessions) > 0
}

// Len returns the number of sessions
func (m *Manager) Len() int {
	return len(m.sessions)
}

// IsCurrentSession reports whether s is the active session
func (m *Manager) IsCurrentSession(s Session) bool {
	return m.currentID != "" && m.currentID == s.ID
}

// HasSessionWithID reports whether a session with the id exists
func (m *Manager) HasSessionWithID(id string) bool {
	return m.indexOf(id) >= 0
}

// SessionByID returns the session with the id
func (m *Manager) SessionByID(id string) (Session, error) {
	i := m.indexOf(id)
	if i < 0 {
		return Session{}, ErrSessionNotFound
	}
	return m.sessions[i], nil
}

// CurrentSession returns the active session
func (m *Manager) CurrentSession() (Session, error) {
	if m.currentID == "" {
		return Session{}, ErrNoActiveSession
	}
	i := m.indexOf(m.currentID)
	if i < 0 {
		return Session{}, ErrNoActiveSession
	}
	return m.sessions[i], nil
}

// CurrentPosition returns the index of the active session, or -1
func (m *Manager) CurrentPosition() int {
	if m.currentID == "" {
		return -1
	}
	return m.indexOf(m.currentID)
}

// SelectSession makes s active. Selecting the active session still
// publishes a snapshot with an unchanged list.
func (m *Manager) SelectSession(s Session) error {
	return m.SelectSessionByID(s.ID)
}

// SelectSessionByID makes the session with the id active
func (m *Manager) SelectSessionByID(id string) error {
	if m.indexOf(id) < 0 {
		return ErrSessionNotFound
	}
	m.currentID = id
	m.publish(m.sessions)
	return nil
}

// RemoveAllSessions clears the registry
func (m *Manager) RemoveAllSessions() {
	removed := len(m.sessions)
	m.currentID = ""
	m.recordRemoved(removed)
	m.publish(nil)
}

// RemoveCurrentSession removes the active session, if any
func (m *Manager) RemoveCurrentSession() {
	if m.currentID == "" {
		return
	}
	m.RemoveSession(m.currentID)
}

// RemoveSession removes the session with the id. Removing the active
// session promotes the one now at its position, or the last one when it
// was at the end. Unknown ids are ignored.
func (m *Manager) RemoveSession(id string) {
	pos := m.indexOf(id)
	if pos < 0 {
		return
	}

	next := make([]Session, 0, len(m.sessions)-1)
	next = append(next, m.sessions[:pos]...)
	next = append(next, m.sessions[pos+1:]...)

	if m.currentID == id {
		if len(next) == 0 {
			m.currentID = ""
		} else {
			m.currentID = next[min(pos, len(next)-1)].ID
		}
	}

	m.recordRemoved(1)
	m.logger.Debug("Session removed",
		logging.SessionID(id),
		zap.String("current_id", m.currentID),
	)
	m.publish(next)
}

// UpdateURL replaces the URL of a session after navigation. The internal
// error page keeps the address the user asked for, and a change that only
// adds or drops a trailing slash publishes nothing.
func (m *Manager) UpdateURL(id, url string) (Session, error) {
	pos := m.indexOf(id)
	if pos < 0 {
		return Session{}, ErrSessionNotFound
	}

	current := m.sessions[pos]
	if urlutil.IsInternalErrorURL(url) || urlutil.URLsMatchExceptForTrailingSlash(current.URL, url) {
		return current, nil
	}

	next := make([]Session, len(m.sessions))
	copy(next, m.sessions)
	next[pos].URL = url

	m.publish(next)
	return next[pos], nil
}

func (m *Manager) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range m.sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) recordRemoved(n int) {
	if m.metrics != nil && n > 0 {
		m.metrics.AddSessionsRemoved(n)
	}
}

// publish installs next as the session list and notifies observers in
// subscription order. Observers never see versions go backwards, even when
// one of them mutates the registry from its callback.
func (m *Manager) publish(next []Session) {
	m.sessions = next
	m.version++

	if m.metrics != nil {
		m.metrics.SetSessionsActive(len(next))
		m.metrics.IncSnapshots()
	}

	if len(m.subs) == 0 {
		return
	}
	snap := m.Sessions()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	for _, sub := range subs {
		// An observer changed the registry and the newer snapshot has
		// already reached everyone; the rest must not see this older one.
		if m.version != snap.Version {
			return
		}
		sub.fn(snap)
	}
}
