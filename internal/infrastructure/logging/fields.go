package logging

import "go.uber.org/zap"

// Field keys shared by every component, so log queries can join on them.
const (
	KeySessionID = "session_id"
	KeySource    = "source"
	KeyEngine    = "engine"
	KeyRequestID = "request_id"
)

func SessionID(id string) zap.Field { return zap.String(KeySessionID, id) }

func Source(source string) zap.Field { return zap.String(KeySource, source) }

func Engine(id string) zap.Field { return zap.String(KeyEngine, id) }

func RequestID(id string) zap.Field { return zap.String(KeyRequestID, id) }
