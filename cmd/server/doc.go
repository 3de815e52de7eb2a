// Package main is the entry point for the Focus Browser session server.
//
// The server owns the browser's session registry. HTTP handlers and the
// /stream WebSocket submit work to a single session loop, so the registry is
// only ever touched by one goroutine.
//
// Architecture:
//
//	Browser UI → REST (/sessions, /intents, /search, /settings, /autocomplete)
//	           → WebSocket (/stream) ← session snapshots
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -engines /etc/focus/engines.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
