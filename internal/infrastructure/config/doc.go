// Package config provides 12-factor configuration management for the
// browser backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Search: Engine catalog override and initial search preferences
//   - Suggest: Outbound suggestion client tuning
//   - Stream: WebSocket snapshot buffering
//   - Autocomplete: Initial custom autocomplete domains
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - SEARCH_DEFAULT_ENGINE, SEARCH_ENGINES_FILE, SEARCH_SUGGESTIONS
//   - SUGGEST_TIMEOUT, SUGGEST_RPS, SUGGEST_RETRY_MAX, SUGGEST_MAX_RESULTS
//   - WS_BUFFER, AUTOCOMPLETE_DOMAINS
package config
