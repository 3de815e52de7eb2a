package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/customtab"
	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/intent"
)

func viewIntent(data string, extras map[string]any) intent.Intent {
	return intent.Intent{Action: intent.ActionView, Data: data, Extras: extras}
}

func shareIntent(text string) intent.Intent {
	return intent.Intent{
		Action: intent.ActionSend,
		Extras: map[string]any{intent.ExtraText: text},
	}
}

func TestHandleViewIntent(t *testing.T) {
	m := newTestManager()

	s, ok := m.HandleIntent(viewIntent("https://www.mozilla.org", nil), false)

	require.True(t, ok)
	assert.Equal(t, SourceView, s.Source)
	assert.Equal(t, "https://www.mozilla.org", s.URL)
	assert.True(t, s.BlockingEnabled)
	assert.True(t, m.IsCurrentSession(s))
}

func TestHandleViewIntentWithoutData(t *testing.T) {
	m := newTestManager()

	_, ok := m.HandleIntent(viewIntent("", nil), false)
	assert.False(t, ok)
	assert.False(t, m.HasSession())
}

func TestHandleHomeScreenIntent(t *testing.T) {
	tests := []struct {
		name     string
		extras   map[string]any
		blocking bool
	}{
		{"blocking disabled", map[string]any{intent.ExtraHomeScreen: true, intent.ExtraBlockingEnabled: false}, false},
		{"blocking enabled", map[string]any{intent.ExtraHomeScreen: true, intent.ExtraBlockingEnabled: true}, true},
		{"blocking defaults on", map[string]any{intent.ExtraHomeScreen: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			s, ok := m.HandleIntent(viewIntent("https://example.com", tt.extras), false)

			require.True(t, ok)
			assert.Equal(t, SourceHomeScreen, s.Source)
			assert.Equal(t, tt.blocking, s.BlockingEnabled)
		})
	}
}

func TestHandleCustomTabIntent(t *testing.T) {
	m := newTestManager()
	in := viewIntent("https://www.mozilla.org", map[string]any{
		customtab.ExtraSession:      nil,
		customtab.ExtraToolbarColor: 0xFF0000,
	})

	s, ok := m.HandleIntent(in, false)

	require.True(t, ok)
	assert.Equal(t, SourceCustomTab, s.Source)
	assert.True(t, s.IsCustomTab())
	cfg, ok := s.CustomTabConfig()
	require.True(t, ok)
	require.NotNil(t, cfg)
	assert.Equal(t, "#FF0000", cfg.ToolbarColor)
}

func TestHandleCustomTabFromHomeScreenKeepsBlockingState(t *testing.T) {
	m := newTestManager()
	in := viewIntent("https://www.mozilla.org", map[string]any{
		customtab.ExtraSession:      nil,
		intent.ExtraHomeScreen:      true,
		intent.ExtraBlockingEnabled: false,
	})

	s, ok := m.HandleIntent(in, false)

	require.True(t, ok)
	assert.Equal(t, SourceCustomTab, s.Source)
	assert.False(t, s.BlockingEnabled)
}

func TestHandleShareURL(t *testing.T) {
	m := newTestManager()

	s, ok := m.HandleIntent(shareIntent("https://www.mozilla.org"), false)

	require.True(t, ok)
	assert.Equal(t, SourceShare, s.Source)
	assert.Equal(t, "https://www.mozilla.org", s.URL)
	assert.Equal(t, KindPlain, s.Kind())
}

func TestHandleShareText(t *testing.T) {
	m := newTestManager()
	rec := &recorder{}
	m.Subscribe(rec.observe)

	s, ok := m.HandleIntent(shareIntent("hello world"), false)

	require.True(t, ok)
	assert.Equal(t, 1, m.Len())
	require.Len(t, rec.snapshots, 1)
	assert.Equal(t, []string{s.ID}, ids(rec.last().Sessions))
	assert.Equal(t, SourceShare, s.Source)
	assert.Equal(t, "https://search.test/?q=hello+world", s.URL)
	terms, ok := s.SearchTerms()
	assert.True(t, ok)
	assert.Equal(t, "hello world", terms)
}

func TestHandleShareWithoutText(t *testing.T) {
	m := newTestManager()

	_, ok := m.HandleIntent(intent.Intent{Action: intent.ActionSend}, false)
	assert.False(t, ok)
	assert.False(t, m.HasSession())
}

func TestHandleShareTextWithoutSearch(t *testing.T) {
	m := NewManager(nil, nil, nil)

	_, ok := m.HandleNewIntent(shareIntent("hello world"))
	assert.False(t, ok)

	_, ok = m.HandleNewIntent(shareIntent("https://example.com"))
	assert.True(t, ok)
}

func TestHandleIntentFromHistoryIgnored(t *testing.T) {
	m := newTestManager()
	in := viewIntent("https://www.mozilla.org", nil)
	in.Flags = intent.FlagLaunchedFromHistory

	_, ok := m.HandleIntent(in, false)
	assert.False(t, ok)
	assert.False(t, m.HasSession())
}

func TestHandleIntentWhileRestoringIgnored(t *testing.T) {
	m := newTestManager()

	_, ok := m.HandleIntent(viewIntent("https://www.mozilla.org", nil), true)
	assert.False(t, ok)
	assert.False(t, m.HasSession())
}

func TestHandleNewIntentSkipsHistoryCheck(t *testing.T) {
	m := newTestManager()
	in := viewIntent("https://www.mozilla.org", nil)
	in.Flags = intent.FlagLaunchedFromHistory

	_, ok := m.HandleNewIntent(in)
	assert.True(t, ok)
}

func TestHandleLauncherIntent(t *testing.T) {
	m := newTestManager()

	_, ok := m.HandleIntent(intent.Intent{Action: intent.ActionMain, Data: "https://a.test"}, false)
	assert.False(t, ok)
	assert.False(t, m.HasSession())
}

func TestHandleUnknownAction(t *testing.T) {
	m := newTestManager()

	_, ok := m.HandleIntent(intent.Intent{Action: "android.intent.action.EDIT", Data: "https://a.test"}, false)
	assert.False(t, ok)
	assert.False(t, m.HasSession())
}

func TestCustomClassifier(t *testing.T) {
	m := NewManager(nil, URLClassifierFunc(func(string) bool { return true }), fakeSearch{})

	s, ok := m.HandleNewIntent(shareIntent("hello world"))
	require.True(t, ok)
	assert.Equal(t, "hello world", s.URL)
}
