package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePrefs struct {
	engine      string
	suggestions bool
}

func (f *fakePrefs) DefaultSearchEngineName() string { return f.engine }
func (f *fakePrefs) SearchSuggestionsEnabled() bool  { return f.suggestions }

func TestDefaultEngine(t *testing.T) {
	prefs := &fakePrefs{}
	m := NewManager(BundledCatalog(), prefs)

	assert.Equal(t, "google", m.DefaultEngine().ID)

	prefs.engine = "DuckDuckGo"
	assert.Equal(t, "duckduckgo", m.DefaultEngine().ID)

	prefs.engine = "bing"
	assert.Equal(t, "bing", m.DefaultEngine().ID)

	prefs.engine = "Unknown Engine"
	assert.Equal(t, "google", m.DefaultEngine().ID)
}

func TestDefaultEngineWithoutCatalogDefault(t *testing.T) {
	cat := &Catalog{Engines: []Engine{
		{ID: "first", Name: "First", SearchTemplate: "https://first/?q={searchTerms}"},
		{ID: "second", Name: "Second", SearchTemplate: "https://second/?q={searchTerms}"},
	}}

	assert.Equal(t, "first", NewManager(cat, nil).DefaultEngine().ID)
}

func TestCreateSearchURL(t *testing.T) {
	m := NewManager(BundledCatalog(), &fakePrefs{engine: "duckduckgo"})

	assert.Equal(t, "https://duckduckgo.com/?q=hello+world&t=fpas", m.CreateSearchURL("hello world"))
}

func TestSearchTermsOrURL(t *testing.T) {
	m := NewManager(BundledCatalog(), nil)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"google results", "https://www.google.com/search?q=privacy+browser&ie=utf-8", "privacy browser"},
		{"duckduckgo results", "https://duckduckgo.com/?q=focus%20android&t=fpas", "focus android"},
		{"wikipedia results", "https://en.wikipedia.org/wiki/Special:Search?search=Mozilla", "Mozilla"},
		{"engine page without terms", "https://www.google.com/maps", "https://www.google.com/maps"},
		{"other site", "https://www.mozilla.org/?q=ignored", "https://www.mozilla.org/?q=ignored"},
		{"not a web url", "ftp://www.google.com/search?q=files", "ftp://www.google.com/search?q=files"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.SearchTermsOrURL(tt.url))
		})
	}
}

func TestEngineLookup(t *testing.T) {
	m := NewManager(BundledCatalog(), nil)

	e, ok := m.Engine("amazon.com")
	assert.True(t, ok)
	assert.Equal(t, "amazon", e.ID)

	_, ok = m.Engine("yahoo")
	assert.False(t, ok)

	engines := m.Engines()
	engines[0].Name = "mutated"
	assert.Equal(t, "Google", m.Engines()[0].Name)
}
