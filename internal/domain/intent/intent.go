// Package intent models the inbound requests another application (or the
// launcher) hands to the browser: an action, an optional data URI, launch
// flags and a bag of loosely typed extras.
package intent

import (
	"github.com/spf13/cast"
)

// Action names what the sender wants done
type Action string

const (
	ActionView Action = "android.intent.action.VIEW"
	ActionSend Action = "android.intent.action.SEND"
	ActionMain Action = "android.intent.action.MAIN"
)

// Flags carried by the intent
const (
	FlagLaunchedFromHistory = 0x00100000
)

// Well-known extras
const (
	ExtraText = "android.intent.extra.TEXT"

	// ExtraHomeScreen marks intents fired by a home screen shortcut.
	ExtraHomeScreen = "add_to_homescreen"
	// ExtraBlockingEnabled carries the content blocking state stored with the shortcut.
	ExtraBlockingEnabled = "blocking_enabled"
)

// Intent is an inbound request to open content
type Intent struct {
	Action Action         `json:"action"`
	Data   string         `json:"data,omitempty"`
	Flags  int            `json:"flags,omitempty"`
	Extras map[string]any `json:"extras,omitempty"`
}

// HasFlag reports whether all bits of flag are set
func (i Intent) HasFlag(flag int) bool {
	return i.Flags&flag == flag
}

// LaunchedFromHistory reports whether the platform re-delivered this intent
// from the recent apps list.
func (i Intent) LaunchedFromHistory() bool {
	return i.HasFlag(FlagLaunchedFromHistory)
}

// HasExtra reports whether the key is present, even with a nil value
func (i Intent) HasExtra(key string) bool {
	_, ok := i.Extras[key]
	return ok
}

// StringExtra returns the extra as a string, or "" when absent or not coercible
func (i Intent) StringExtra(key string) string {
	v, ok := i.Extras[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// BoolExtra returns the extra as a bool, or def when absent or malformed
func (i Intent) BoolExtra(key string, def bool) bool {
	v, ok := i.Extras[key]
	if !ok || v == nil {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// IntExtra returns the extra as an int, or def when absent or malformed
func (i Intent) IntExtra(key string, def int) int {
	v, ok := i.Extras[key]
	if !ok || v == nil {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return def
	}
	return n
}

// BundleExtra returns a nested extras bundle as its own Intent view.
// The second result is false when the key is absent or not a map.
func (i Intent) BundleExtra(key string) (Intent, bool) {
	v, ok := i.Extras[key]
	if !ok || v == nil {
		return Intent{}, false
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return Intent{}, false
	}
	return Intent{Extras: m}, true
}

// BundleListExtra returns a list of nested bundles, skipping malformed items
func (i Intent) BundleListExtra(key string) []Intent {
	v, ok := i.Extras[key]
	if !ok || v == nil {
		return nil
	}
	items, err := cast.ToSliceE(v)
	if err != nil {
		return nil
	}

	bundles := make([]Intent, 0, len(items))
	for _, item := range items {
		m, err := cast.ToStringMapE(item)
		if err != nil {
			continue
		}
		bundles = append(bundles, Intent{Extras: m})
	}
	return bundles
}
