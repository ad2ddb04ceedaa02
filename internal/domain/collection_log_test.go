package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCollectionLogValidate(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	before := start.Add(-time.Minute)
	after := start.Add(time.Hour)

	tests := []struct {
		name string
		log  CollectionLog
		want error
	}{
		{"ok", CollectionLog{StartTime: start, EndTime: &after, WeightKg: decimal.NewFromInt(10)}, nil},
		{"open window", CollectionLog{StartTime: start, WeightKg: decimal.Zero}, nil},
		{"missing start", CollectionLog{WeightKg: decimal.Zero}, ErrMissingStartTime},
		{"end before start", CollectionLog{StartTime: start, EndTime: &before}, ErrEndBeforeStart},
		{"negative weight", CollectionLog{StartTime: start, WeightKg: decimal.NewFromInt(-1)}, ErrNegativeWeight},
	}

	for _, tc := range tests {
		if err := tc.log.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: Validate() = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestStartOfDayUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2026, 3, 2, 3, 0, 0, 0, loc)

	got := StartOfDay(ts)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %s, want %s", got, want)
	}
}
