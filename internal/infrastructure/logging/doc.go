// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: sampled JSON tagged with the service name
//   - Development: Colored console output for human readability
//
// Components take a *zap.Logger; use Component to hand each one a named
// child so log lines carry their origin. The level is shared by all
// children and can be changed while running through Level, which the
// server mounts at /debug/log-level.
//
// Example Usage:
//
//	logger, _ := logging.New(logging.DefaultConfig())
//	logger.Info("Server starting", zap.String("port", "8000"))
//	sessions := session.NewManager(parser, nil, engines).WithLogger(logger.Component("sessions"))
//	sessions.CreateSession(session.SourceMenu, "https://example.com") // logs logging.SessionID(...)
package logging
