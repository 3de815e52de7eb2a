// Package search turns free text into search URLs using a catalog of
// search engines, recovers the terms from a search results URL, and fetches
// query suggestions.
package search

import (
	"net/url"
	"strings"
)

// TermsPlaceholder marks where the escaped query goes in a template
const TermsPlaceholder = "{searchTerms}"

// Engine is a search provider the user can pick
type Engine struct {
	ID              string `json:"id" yaml:"id" toml:"id"`
	Name            string `json:"name" yaml:"name" toml:"name"`
	SearchTemplate  string `json:"search" yaml:"search" toml:"search"`
	SuggestTemplate string `json:"suggest,omitempty" yaml:"suggest" toml:"suggest"`
}

// BuildSearchURL fills the search template with the query
func (e Engine) BuildSearchURL(terms string) string {
	return fill(e.SearchTemplate, terms)
}

// BuildSuggestURL fills the suggestion template, or returns "" when the
// engine offers no suggestions.
func (e Engine) BuildSuggestURL(terms string) string {
	if e.SuggestTemplate == "" {
		return ""
	}
	return fill(e.SuggestTemplate, terms)
}

// TermsParamName returns the query parameter that carries the search terms
func (e Engine) TermsParamName() string {
	u, err := url.Parse(e.SearchTemplate)
	if err != nil {
		return ""
	}
	for key, values := range u.Query() {
		for _, v := range values {
			if v == TermsPlaceholder {
				return key
			}
		}
	}
	return ""
}

func fill(template, terms string) string {
	return strings.ReplaceAll(template, TermsPlaceholder, url.QueryEscape(terms))
}
