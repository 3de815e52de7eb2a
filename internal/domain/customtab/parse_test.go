package customtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/intent"
)

func customTabIntent(extras map[string]any) intent.Intent {
	all := map[string]any{ExtraSession: nil}
	for k, v := range extras {
		all[k] = v
	}
	return intent.Intent{Action: intent.ActionView, Data: "https://www.mozilla.org", Extras: all}
}

func TestIsCustomTabIntent(t *testing.T) {
	p := NewParser()

	assert.True(t, p.IsCustomTabIntent(customTabIntent(nil)))
	assert.False(t, p.IsCustomTabIntent(intent.Intent{Action: intent.ActionView}))
}

func TestParseDefaults(t *testing.T) {
	cfg := NewParser().Parse(customTabIntent(nil))

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.ToolbarColor)
	assert.False(t, cfg.CustomCloseButton)
	assert.False(t, cfg.DisableURLBarHiding)
	assert.False(t, cfg.ShowShareMenuItem)
	assert.Nil(t, cfg.ActionButton)
	assert.Empty(t, cfg.MenuItems)
}

func TestParseToolbarColor(t *testing.T) {
	tests := []struct {
		name  string
		color any
		want  string
	}{
		{"opaque red", -65536, "#FF0000"},
		{"opaque black", float64(-16777216), "#000000"},
		{"no alpha", 0x336699, "#336699"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewParser().Parse(customTabIntent(map[string]any{ExtraToolbarColor: tt.color}))
			assert.Equal(t, tt.want, cfg.ToolbarColor)
		})
	}
}

func TestParseFullConfig(t *testing.T) {
	in := customTabIntent(map[string]any{
		ExtraCloseButtonIcon:     "bitmap",
		ExtraDisableURLBarHiding: true,
		ExtraDefaultShareMenu:    true,
		ExtraTintActionButton:    true,
		ExtraActionButtonBundle: map[string]any{
			KeyIcon:          "bitmap",
			KeyDescription:   "<b>Bookmark</b>",
			KeyPendingIntent: "pi-1",
		},
		ExtraMenuItems: []any{
			map[string]any{KeyMenuItemTitle: "Open in app", KeyPendingIntent: "pi-2"},
			map[string]any{KeyMenuItemTitle: "<script>alert(1)</script>", KeyPendingIntent: "pi-3"},
			map[string]any{KeyMenuItemTitle: "Fish & Chips", KeyPendingIntent: "pi-4"},
		},
	})

	cfg := NewParser().Parse(in)

	assert.True(t, cfg.CustomCloseButton)
	assert.True(t, cfg.DisableURLBarHiding)
	assert.True(t, cfg.ShowShareMenuItem)

	require.NotNil(t, cfg.ActionButton)
	assert.Equal(t, "Bookmark", cfg.ActionButton.Description)
	assert.True(t, cfg.ActionButton.HasIcon)
	assert.True(t, cfg.ActionButton.Tint)
	assert.Equal(t, "pi-1", cfg.ActionButton.PendingIntent)

	// The script-only title sanitizes to nothing and is dropped
	require.Len(t, cfg.MenuItems, 2)
	assert.Equal(t, MenuItem{Title: "Open in app", PendingIntent: "pi-2"}, cfg.MenuItems[0])
	assert.Equal(t, "Fish & Chips", cfg.MenuItems[1].Title)
}

func TestParseActionButtonRequiresPendingIntent(t *testing.T) {
	in := customTabIntent(map[string]any{
		ExtraActionButtonBundle: map[string]any{KeyDescription: "Share"},
	})

	assert.Nil(t, NewParser().Parse(in).ActionButton)
}
