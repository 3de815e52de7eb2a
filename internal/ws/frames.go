package ws

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/domain/session"
)

// Frame types
const (
	TypeSessions = "sessions"
	TypePong     = "pong"
	TypeError    = "error"
)

// SessionsFrame carries one registry snapshot
type SessionsFrame struct {
	Type      string         `json:"type"`
	Sessions  []session.View `json:"sessions"`
	CurrentID string         `json:"current_id"`
	Version   uint64         `json:"version"`
}

// ControlFrame answers client messages
type ControlFrame struct {
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ClientMessage is what clients may send
type ClientMessage struct {
	Type string `json:"type"`
}

func encodeSnapshot(snap session.Snapshot) ([]byte, error) {
	return sonic.Marshal(SessionsFrame{
		Type:      TypeSessions,
		Sessions:  snap.Views(),
		CurrentID: snap.CurrentID,
		Version:   snap.Version,
	})
}

func encodeControl(frameType, message string) []byte {
	data, err := sonic.Marshal(ControlFrame{
		Type:      frameType,
		Message:   message,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return []byte(`{"type":"error"}`)
	}
	return data
}
