/*
Package monitoring provides Prometheus metrics for the browser backend.

# Overview

Each Metrics value owns a private registry, so tests and embedded
servers can build as many as they like without duplicate registration.

# Features

- HTTP request metrics (latency, throughput, size)
- Session registry metrics (open sessions, creations, snapshots, intents)
- Outbound call metrics for search suggestion lookups
- WebSocket stream metrics (connections, messages, dropped snapshots)

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "suggest", "google")
	// ... perform request ...
	timer.Stop("success")
*/
package monitoring
