package session

import "errors"

var (
	// ErrNoActiveSession is returned when the current session is requested
	// while no session exists. Callers should check HasSession first.
	ErrNoActiveSession = errors.New("there's no active session")

	// ErrSessionNotFound is returned for ids that name no session.
	// Callers should check HasSessionWithID first.
	ErrSessionNotFound = errors.New("session not found")

	// ErrLoopClosed is returned by Loop.Do after Close
	ErrLoopClosed = errors.New("session loop closed")
)
