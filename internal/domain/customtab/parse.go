package customtab

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/intent"
)

// Parser detects and decodes custom tab intents
type Parser struct {
	policy *bluemonday.Policy
}

// NewParser creates a parser. Labels come from another application, so
// all markup is stripped before they reach the toolbar or menu.
func NewParser() *Parser {
	return &Parser{policy: bluemonday.StrictPolicy()}
}

// IsCustomTabIntent reports whether the intent asks for a custom tab
func (p *Parser) IsCustomTabIntent(in intent.Intent) bool {
	return in.HasExtra(ExtraSession)
}

// Parse builds the configuration carried by a custom tab intent.
// Malformed pieces are skipped rather than rejected.
func (p *Parser) Parse(in intent.Intent) *Config {
	cfg := &Config{
		CustomCloseButton:   in.HasExtra(ExtraCloseButtonIcon),
		DisableURLBarHiding: in.BoolExtra(ExtraDisableURLBarHiding, false),
		ShowShareMenuItem:   in.BoolExtra(ExtraDefaultShareMenu, false),
	}

	if in.HasExtra(ExtraToolbarColor) {
		cfg.ToolbarColor = formatColor(in.IntExtra(ExtraToolbarColor, 0))
	}

	if bundle, ok := in.BundleExtra(ExtraActionButtonBundle); ok {
		cfg.ActionButton = p.parseActionButton(bundle, in.BoolExtra(ExtraTintActionButton, false))
	}

	for _, item := range in.BundleListExtra(ExtraMenuItems) {
		title := p.sanitize(item.StringExtra(KeyMenuItemTitle))
		if title == "" {
			continue
		}
		cfg.MenuItems = append(cfg.MenuItems, MenuItem{
			Title:         title,
			PendingIntent: item.StringExtra(KeyPendingIntent),
		})
	}

	return cfg
}

func (p *Parser) parseActionButton(bundle intent.Intent, tint bool) *ActionButton {
	description := p.sanitize(bundle.StringExtra(KeyDescription))
	pending := bundle.StringExtra(KeyPendingIntent)
	if description == "" || pending == "" {
		return nil
	}

	return &ActionButton{
		Description:   description,
		HasIcon:       bundle.HasExtra(KeyIcon),
		Tint:          tint,
		PendingIntent: pending,
	}
}

func (p *Parser) sanitize(label string) string {
	// StrictPolicy escapes entities; labels are plain text, so undo that
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(label)))
}

// formatColor drops the alpha channel of an ARGB color
func formatColor(argb int) string {
	return fmt.Sprintf("#%06X", uint32(argb)&0xFFFFFF)
}
