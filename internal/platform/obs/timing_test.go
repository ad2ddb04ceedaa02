package obs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/metrics"
)

func TestTimeLogsAndObservesOutcome(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	Configure(logger.New(logger.Options{Level: zerolog.DebugLevel, Output: &buf}), metrics.NewOperationMetrics(reg))
	t.Cleanup(func() { Configure(logger.Nop(), nil) })

	failing := func() (err error) {
		defer Time(context.Background(), "stats.weekly")(&err)
		return errors.New("cache down")
	}
	if err := failing(); err == nil {
		t.Fatal("expected error to pass through")
	}

	out := buf.String()
	if !strings.Contains(out, `"op":"stats.weekly"`) || !strings.Contains(out, `"err":"cache down"`) {
		t.Fatalf("log line missing fields: %s", out)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 1 || len(mfs[0].GetMetric()) != 1 {
		t.Fatalf("expected a single operation series, got %d families", len(mfs))
	}
	labels := mfs[0].GetMetric()[0].GetLabel()
	found := false
	for _, l := range labels {
		if l.GetName() == "outcome" && l.GetValue() == "error" {
			found = true
		}
	}
	if !found {
		t.Fatalf("outcome label = %v, want error", labels)
	}
}

func TestTimeWithoutConfigure(t *testing.T) {
	Configure(logger.Nop(), nil)
	done := Time(context.Background(), "noop")
	done(nil)
}
