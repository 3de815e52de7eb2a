// Package customtab decodes the browser chrome another application asks for
// when it opens a page in a custom tab.
package customtab

// Extras understood by the parser
const (
	ExtraSession             = "android.support.customtabs.extra.SESSION"
	ExtraToolbarColor        = "android.support.customtabs.extra.TOOLBAR_COLOR"
	ExtraCloseButtonIcon     = "android.support.customtabs.extra.CLOSE_BUTTON_ICON"
	ExtraActionButtonBundle  = "android.support.customtabs.extra.ACTION_BUTTON_BUNDLE"
	ExtraTintActionButton    = "android.support.customtabs.extra.TINT_ACTION_BUTTON"
	ExtraDefaultShareMenu    = "android.support.customtabs.extra.SHARE_MENU_ITEM"
	ExtraMenuItems           = "android.support.customtabs.extra.MENU_ITEMS"
	ExtraDisableURLBarHiding = "org.mozilla.focus.customtabs.EXTRA_DISABLE_URLBAR_HIDING"

	KeyIcon          = "android.support.customtabs.customaction.ICON"
	KeyDescription   = "android.support.customtabs.customaction.DESCRIPTION"
	KeyPendingIntent = "android.support.customtabs.customaction.PENDING_INTENT"
	KeyMenuItemTitle = "android.support.customtabs.customaction.MENU_ITEM_TITLE"
)

// Config is the chrome configuration of a custom tab
type Config struct {
	ToolbarColor        string        `json:"toolbar_color,omitempty"` // "#RRGGBB"
	CustomCloseButton   bool          `json:"custom_close_button"`
	DisableURLBarHiding bool          `json:"disable_urlbar_hiding"`
	ShowShareMenuItem   bool          `json:"show_share_menu_item"`
	ActionButton        *ActionButton `json:"action_button,omitempty"`
	MenuItems           []MenuItem    `json:"menu_items,omitempty"`
}

// ActionButton is the extra toolbar button supplied by the caller
type ActionButton struct {
	Description   string `json:"description"`
	HasIcon       bool   `json:"has_icon"`
	Tint          bool   `json:"tint"`
	PendingIntent string `json:"pending_intent"`
}

// MenuItem is an entry the caller adds to the overflow menu
type MenuItem struct {
	Title         string `json:"title"`
	PendingIntent string `json:"pending_intent"`
}
