package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/customtab"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/shared/urlutil"
)

type fakeSearch struct{}

func (fakeSearch) CreateSearchURL(terms string) string {
	return "https://search.test/?q=" + url.QueryEscape(terms)
}

func newTestManager() *Manager {
	return NewManager(customtab.NewParser(), nil, fakeSearch{})
}

// recorder collects every snapshot delivered to it
type recorder struct {
	snapshots []Snapshot
}

func (r *recorder) observe(s Snapshot) { r.snapshots = append(r.snapshots, s) }

func (r *recorder) last() Snapshot { return r.snapshots[len(r.snapshots)-1] }

func ids(sessions []Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestCreateSession(t *testing.T) {
	m := newTestManager()
	rec := &recorder{}
	m.Subscribe(rec.observe)

	s := m.CreateSession(SourceUserEntered, "https://www.mozilla.org")

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, SourceUserEntered, s.Source)
	assert.Equal(t, "https://www.mozilla.org", s.URL)
	assert.True(t, s.BlockingEnabled)
	assert.Equal(t, KindPlain, s.Kind())
	assert.True(t, m.HasSession())
	assert.True(t, m.IsCurrentSession(s))
	assert.Equal(t, 0, m.CurrentPosition())

	require.Len(t, rec.snapshots, 1)
	assert.Equal(t, s.ID, rec.last().CurrentID)
	assert.Equal(t, uint64(1), rec.last().Version)
}

func TestCreateSearchSession(t *testing.T) {
	m := newTestManager()

	s := m.CreateSearchSession(SourceSearch, "https://search.test/?q=firefox", "firefox")

	terms, ok := s.SearchTerms()
	assert.True(t, ok)
	assert.Equal(t, "firefox", terms)
	assert.Equal(t, KindSearch, s.Kind())

	_, ok = s.CustomTabConfig()
	assert.False(t, ok)
}

func TestNewSessionBecomesCurrent(t *testing.T) {
	m := newTestManager()

	a := m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")

	assert.False(t, m.IsCurrentSession(a))
	assert.True(t, m.IsCurrentSession(b))
	assert.Equal(t, 1, m.CurrentPosition())
	assert.Equal(t, []string{a.ID, b.ID}, ids(m.Sessions().Sessions))
}

func TestCurrentSessionEmpty(t *testing.T) {
	m := newTestManager()

	_, err := m.CurrentSession()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Equal(t, -1, m.CurrentPosition())
	assert.False(t, m.HasSession())
}

func TestSessionByID(t *testing.T) {
	m := newTestManager()
	s := m.CreateSession(SourceMenu, "https://a.test")

	got, err := m.SessionByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.True(t, m.HasSessionWithID(s.ID))

	_, err = m.SessionByID("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, m.HasSessionWithID("missing"))
	assert.False(t, m.HasSessionWithID(""))
}

func TestSelectSession(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	m.CreateSession(SourceMenu, "https://b.test")

	rec := &recorder{}
	m.Subscribe(rec.observe)

	require.NoError(t, m.SelectSession(a))
	assert.True(t, m.IsCurrentSession(a))
	require.Len(t, rec.snapshots, 1)
	assert.Equal(t, a.ID, rec.last().CurrentID)
}

func TestSelectActiveSessionNotifiesOnce(t *testing.T) {
	m := newTestManager()
	m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")
	before := m.Sessions()

	rec := &recorder{}
	m.Subscribe(rec.observe)

	require.NoError(t, m.SelectSession(b))

	require.Len(t, rec.snapshots, 1)
	assert.Equal(t, before.Sessions, rec.last().Sessions)
	assert.Equal(t, b.ID, rec.last().CurrentID)
	assert.Equal(t, before.Version+1, rec.last().Version)
}

func TestSelectUnknownSession(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")

	rec := &recorder{}
	m.Subscribe(rec.observe)

	err := m.SelectSessionByID("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, rec.snapshots)
	assert.True(t, m.IsCurrentSession(a))
}

func TestRemoveCurrentSessionPromotesNext(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")
	c := m.CreateSession(SourceMenu, "https://c.test")
	require.NoError(t, m.SelectSession(b))

	m.RemoveCurrentSession()

	assert.Equal(t, []string{a.ID, c.ID}, ids(m.Sessions().Sessions))
	current, err := m.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, c.ID, current.ID)
}

func TestRemoveLastSessionPromotesPrevious(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")

	m.RemoveSession(b.ID)

	current, err := m.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, a.ID, current.ID)
}

func TestRemoveOnlySession(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")

	m.RemoveSession(a.ID)

	assert.False(t, m.HasSession())
	_, err := m.CurrentSession()
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Empty(t, m.Sessions().CurrentID)
}

func TestRemoveBackgroundSessionKeepsCurrent(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")

	m.RemoveSession(a.ID)

	assert.True(t, m.IsCurrentSession(b))
	assert.Equal(t, 0, m.CurrentPosition())
}

func TestRemoveUnknownSessionIsSilent(t *testing.T) {
	m := newTestManager()
	m.CreateSession(SourceMenu, "https://a.test")

	rec := &recorder{}
	m.Subscribe(rec.observe)

	m.RemoveSession("missing")
	assert.Empty(t, rec.snapshots)
	assert.Equal(t, 1, m.Len())
}

func TestRemoveCurrentSessionWhenEmpty(t *testing.T) {
	m := newTestManager()
	rec := &recorder{}
	m.Subscribe(rec.observe)

	m.RemoveCurrentSession()
	assert.Empty(t, rec.snapshots)
}

func TestRemoveAllSessions(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")

	rec := &recorder{}
	m.Subscribe(rec.observe)

	m.RemoveAllSessions()

	require.Len(t, rec.snapshots, 1)
	assert.Empty(t, rec.last().Sessions)
	assert.Empty(t, rec.last().CurrentID)
	assert.False(t, m.HasSession())

	_, err := m.SessionByID(a.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.False(t, m.HasSessionWithID(b.ID))
}

func TestUpdateURL(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	old := m.Sessions()

	updated, err := m.UpdateURL(a.ID, "https://a.test/next")
	require.NoError(t, err)
	assert.Equal(t, "https://a.test/next", updated.URL)

	// earlier snapshots are untouched
	assert.Equal(t, "https://a.test", old.Sessions[0].URL)

	_, err = m.UpdateURL("missing", "https://x.test")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	m := newTestManager()
	m.CreateSession(SourceMenu, "https://a.test")
	first := m.Sessions()

	m.CreateSession(SourceMenu, "https://b.test")

	assert.Len(t, first.Sessions, 1)
	assert.Len(t, m.Sessions().Sessions, 2)
}

func TestSubscriptionCancel(t *testing.T) {
	m := newTestManager()
	first := &recorder{}
	second := &recorder{}
	sub := m.Subscribe(first.observe)
	m.Subscribe(second.observe)

	m.CreateSession(SourceMenu, "https://a.test")
	sub.Cancel()
	sub.Cancel()
	m.CreateSession(SourceMenu, "https://b.test")

	assert.Len(t, first.snapshots, 1)
	assert.Len(t, second.snapshots, 2)
}

func TestObserverOrder(t *testing.T) {
	m := newTestManager()
	var order []int
	m.Subscribe(func(Snapshot) { order = append(order, 1) })
	m.Subscribe(func(Snapshot) { order = append(order, 2) })

	m.CreateSession(SourceMenu, "https://a.test")
	assert.Equal(t, []int{1, 2}, order)
}

func TestSnapshotCurrentAndViews(t *testing.T) {
	m := newTestManager()
	a := m.CreateSearchSession(SourceSearch, "https://search.test/?q=x", "x")
	b := m.CreateSession(SourceMenu, "https://b.test")

	snap := m.Sessions()
	current, ok := snap.Current()
	require.True(t, ok)
	assert.Equal(t, b.ID, current.ID)

	views := snap.Views()
	require.Len(t, views, 2)
	assert.Equal(t, a.ID, views[0].ID)
	assert.Equal(t, "x", views[0].SearchTerms)
	assert.Equal(t, KindSearch, views[0].Kind)
	assert.False(t, views[0].Current)
	assert.True(t, views[1].Current)
}

func TestManagerMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	m := newTestManager().WithMetrics(metrics)

	m.CreateSession(SourceMenu, "https://a.test")
	m.CreateSession(SourceMenu, "https://b.test")
	m.RemoveCurrentSession()

	assert.Equal(t, int64(1), metrics.Snapshot().ActiveSessions)
}

func TestParseSource(t *testing.T) {
	src, ok := ParseSource("home_screen")
	assert.True(t, ok)
	assert.Equal(t, SourceHomeScreen, src)

	_, ok = ParseSource("bogus")
	assert.False(t, ok)
}

func TestUpdateURLKeepsAddressOnErrorPage(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	rec := &recorder{}
	m.Subscribe(rec.observe)

	s, err := m.UpdateURL(a.ID, urlutil.InternalErrorURL)
	require.NoError(t, err)
	assert.Equal(t, "https://a.test", s.URL)
	assert.Empty(t, rec.snapshots)
}

func TestUpdateURLIgnoresTrailingSlash(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	rec := &recorder{}
	m.Subscribe(rec.observe)

	s, err := m.UpdateURL(a.ID, "https://A.test/")
	require.NoError(t, err)
	assert.Equal(t, "https://a.test", s.URL)
	assert.Empty(t, rec.snapshots)

	_, err = m.UpdateURL(a.ID, "https://a.test/b")
	require.NoError(t, err)
	assert.Len(t, rec.snapshots, 1)
}

func TestObserverChangingRegistryDoesNotReorderSnapshots(t *testing.T) {
	m := newTestManager()
	a := m.CreateSession(SourceMenu, "https://a.test")
	b := m.CreateSession(SourceMenu, "https://b.test")

	reselected := false
	var firstSeen, secondSeen []uint64
	m.Subscribe(func(snap Snapshot) {
		firstSeen = append(firstSeen, snap.Version)
		if !reselected && snap.CurrentID == b.ID {
			reselected = true
			require.NoError(t, m.SelectSession(a))
		}
	})
	m.Subscribe(func(snap Snapshot) {
		secondSeen = append(secondSeen, snap.Version)
	})

	require.NoError(t, m.SelectSession(b))
	m.CreateSession(SourceMenu, "https://c.test")

	assert.Equal(t, []uint64{3, 4, 5}, firstSeen)
	assert.Equal(t, []uint64{4, 5}, secondSeen)
	assert.Equal(t, uint64(5), m.Sessions().Version)
}
