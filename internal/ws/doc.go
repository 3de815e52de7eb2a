// Package ws streams session registry snapshots over WebSocket.
//
// The Hub subscribes to the registry through the session loop and keeps
// the latest encoded snapshot. Each client gets a bounded queue; when a
// client falls behind, its oldest pending frame is discarded so the loop
// never waits on the network.
//
// Message Types (Client → Server):
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - sessions: {"type":"sessions","sessions":[...],"current_id":"...","version":n}
//   - pong: Reply to ping
//   - error: Malformed or unknown client message
//
// Example Usage:
//
//	hub := ws.NewHub(loop, 16, logger).WithMetrics(metrics)
//	if err := hub.Start(ctx); err != nil { ... }
//	router.GET("/stream", hub.HandleConnection)
package ws
