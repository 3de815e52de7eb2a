/*
Package resilience provides a circuit breaker for best-effort upstream calls.

The search suggestion client keeps one breaker per engine, so an engine
that keeps failing is skipped until its cooldown passes instead of adding
latency to every keystroke.

# Usage

	breakers := resilience.NewGroup(resilience.DefaultSettings())
	err := breakers.Get(engine.ID).Do(func() error {
		return fetch(ctx)
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		// skip this engine for now
	}

# States

	Closed --[threshold failures]-> Open --[cooldown]-> Half-Open --[probe ok]-> Closed
	                                  ^                     |
	                                  +----[probe failed]---+
*/
package resilience
