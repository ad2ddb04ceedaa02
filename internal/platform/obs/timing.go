package obs

import (
	"context"
	"sync"
	"time"

	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/metrics"
)

var (
	mu      sync.RWMutex
	logg    = logger.Nop()
	opStats *metrics.OperationMetrics
)

// Configure installs the logger and operation histogram used by Time.
// Until it is called, Time only measures and discards.
func Configure(l *logger.Logger, m *metrics.OperationMetrics) {
	mu.Lock()
	defer mu.Unlock()
	if l != nil {
		logg = l
	}
	opStats = m
}

func current() (*logger.Logger, *metrics.OperationMetrics) {
	mu.RLock()
	defer mu.RUnlock()
	return logg, opStats
}

// Time starts a timer for the named operation. Call the returned func with a
// pointer to the operation's named error result, usually via defer.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		l, m := current()

		failed := errp != nil && *errp != nil
		m.ObserveOperation(name, dur, failed)

		fields := map[string]any{
			"op":     name,
			"dur_ms": dur.Milliseconds(),
		}
		if failed {
			fields["err"] = (*errp).Error()
		}
		l.Debug(l.WithFields(ctx, fields), "op.done")
	}
}
