package session

// Snapshot is one published version of the session list. Observers share
// it and must not modify Sessions.
type Snapshot struct {
	Sessions  []Session
	CurrentID string
	Version   uint64
}

// Len returns the number of sessions
func (s Snapshot) Len() int {
	return len(s.Sessions)
}

// Current returns the active session, if any
func (s Snapshot) Current() (Session, bool) {
	if s.CurrentID == "" {
		return Session{}, false
	}
	for _, sess := range s.Sessions {
		if sess.ID == s.CurrentID {
			return sess, true
		}
	}
	return Session{}, false
}

// Views converts every session to its transport form
func (s Snapshot) Views() []View {
	views := make([]View, len(s.Sessions))
	for i, sess := range s.Sessions {
		views[i] = sess.View(sess.ID == s.CurrentID)
	}
	return views
}
