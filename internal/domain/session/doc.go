// Package session tracks the browser's open sessions (tabs).
//
// The Manager owns an ordered list of sessions and the id of the active
// one. Every change replaces the list with a new immutable Snapshot and
// hands it to subscribers before the call returns.
//
// Components:
//   - Manager: the registry (create, select, remove, intent handling)
//   - Snapshot: one consistent version of the list plus the active id
//   - Loop: single goroutine owning a Manager; other goroutines reach it via Do
//
// Intent handling:
//   - VIEW with data: custom tab, home screen shortcut or plain view session
//   - SEND with text: URL share, or a search session for free text
//   - anything else, intents re-delivered from history, and restores are ignored
//
// Example Usage:
//
//	manager := session.NewManager(customtab.NewParser(), nil, searchManager)
//	loop := session.NewLoop(manager)
//	defer loop.Close()
//
//	err := loop.Do(ctx, func(m *session.Manager) error {
//		m.CreateSession(session.SourceUserEntered, "https://www.mozilla.org")
//		return nil
//	})
package session
