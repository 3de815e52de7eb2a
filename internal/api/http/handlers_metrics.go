package http

import (
	"time"

	"github.com/GriffinCanCode/FocusBrowser/backend/internal/infrastructure/monitoring"
)

// HandlerMetrics times the work handlers submit to the session loop
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper. A nil metrics records nothing.
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackSessionOperation starts timing a registry operation; call the
// returned func with the operation's error.
func (hm *HandlerMetrics) TrackSessionOperation(operation string) func(error) {
	start := time.Now()
	return func(err error) {
		if hm == nil || hm.metrics == nil {
			return
		}
		status := "success"
		if err != nil {
			status = "error"
			hm.metrics.RecordServiceError("session_loop", operation, errorCode(err))
		}
		hm.metrics.RecordServiceCall("session_loop", operation, status, time.Since(start))
	}
}
