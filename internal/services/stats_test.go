package services

import (
	"fmt"
	"testing"
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logAt(id, zone, vehicle string, start time.Time, kg string) *domain.CollectionLog {
	return &domain.CollectionLog{
		ID:        id,
		ZoneID:    zone,
		VehicleID: vehicle,
		StartTime: start,
		WeightKg:  decimal.RequireFromString(kg),
	}
}

func TestWeeklySummaryCoversSevenDaysInOrder(t *testing.T) {
	logs := []*domain.CollectionLog{
		logAt("L1", "Z1", "V1", fixedNow.Add(-1*time.Hour), "100.25"),
		logAt("L2", "Z1", "V1", fixedNow.AddDate(0, 0, -6), "50.10"),
		logAt("L3", "Z2", "V2", fixedNow.AddDate(0, 0, -7), "999"),
		logAt("L4", "Z2", "V2", fixedNow.Add(-2*time.Hour), "0.005"),
	}

	s := WeeklySummary(logs, fixedNow)

	require.Len(t, s.Buckets, 7)
	assert.Equal(t, []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}, bucketLabels(s.Buckets))
	for i := 1; i < len(s.Buckets); i++ {
		assert.True(t, s.Buckets[i].Date.After(s.Buckets[i-1].Date), "bucket %d out of order", i)
	}
	assert.Equal(t, 3, s.Collections)
	assert.Equal(t, "150.36", s.TotalWeightKg.StringFixed(2))
	assert.Equal(t, "50.12", s.AverageWeightKg.StringFixed(2))
	assert.Equal(t, 2, s.Buckets[6].Collections)
	assert.Equal(t, 1, s.Buckets[0].Collections)
}

func TestWeeklySummaryEmpty(t *testing.T) {
	s := WeeklySummary(nil, fixedNow)
	require.Len(t, s.Buckets, 7)
	assert.Equal(t, 0, s.Collections)
	assert.True(t, s.TotalWeightKg.IsZero())
	assert.True(t, s.AverageWeightKg.IsZero())
}

func TestMonthlySummaryCoversEveryDay(t *testing.T) {
	cases := []struct {
		now  time.Time
		days int
	}{
		{time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2028, 2, 29, 23, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC), 30},
		{time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tc := range cases {
		t.Run(tc.now.Format("2006-01"), func(t *testing.T) {
			s := MonthlySummary(nil, tc.now)
			require.Len(t, s.Buckets, tc.days)
			assert.Equal(t, "1", s.Buckets[0].Label)
			assert.Equal(t, fmt.Sprint(tc.days), s.Buckets[tc.days-1].Label)
		})
	}

	logs := []*domain.CollectionLog{
		logAt("L1", "Z1", "V1", time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC), "10"),
		logAt("L2", "Z1", "V1", time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC), "20"),
		logAt("L3", "Z1", "V1", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), "40"),
	}
	s := MonthlySummary(logs, fixedNow)
	assert.Equal(t, 2, s.Collections)
	assert.Equal(t, "30.00", s.TotalWeightKg.StringFixed(2))
	assert.Equal(t, 1, s.Buckets[30].Collections)
}

func TestZoneDailyCollectionsIncludesEmptyDays(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	logs := []*domain.CollectionLog{
		logAt("L1", "Z1", "V1", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), "10.5"),
		logAt("L2", "Z1", "V2", time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), "4.5"),
		logAt("L3", "Z2", "V1", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), "7"),
		logAt("L4", "Z1", "V1", time.Date(2026, 3, 3, 23, 0, 0, 0, time.UTC), "1"),
	}

	got := ZoneDailyCollections(logs, "Z1", from, to)
	require.Len(t, got, 3)
	assert.Equal(t, "15.00", got[0].WeightKg.StringFixed(2))
	assert.Equal(t, 2, got[0].Collections)
	assert.Equal(t, 0, got[1].Collections)
	assert.True(t, got[1].WeightKg.IsZero())
	assert.Equal(t, 1, got[2].Collections)

	weights := VehicleDailyWeight(logs, "V1", from, to)
	require.Len(t, weights, 3)
	assert.Equal(t, "10.50", weights[0].WeightKg.StringFixed(2))
	assert.Equal(t, "7.00", weights[1].WeightKg.StringFixed(2))
	assert.Equal(t, "1.00", weights[2].WeightKg.StringFixed(2))

	assert.Empty(t, ZoneDailyCollections(logs, "Z1", to, from))
}

func TestRecentLogsSortedAndCapped(t *testing.T) {
	var logs []*domain.CollectionLog
	for i := 0; i < 15; i++ {
		logs = append(logs, logAt(fmt.Sprintf("L%02d", i), "Z1", "V1", fixedNow.Add(time.Duration(i*7%15)*time.Hour), "1"))
	}

	got := RecentLogs(logs, 0)
	require.Len(t, got, DefaultRecentLogLimit)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].StartTime.After(got[i-1].StartTime), "log %d newer than %d", i, i-1)
	}
	assert.Equal(t, fixedNow.Add(14*time.Hour), got[0].StartTime)

	assert.Len(t, RecentLogs(logs[:3], 10), 3)
	assert.Len(t, RecentLogs(logs, 4), 4)
	assert.NotNil(t, RecentLogs(nil, 10))
	assert.Equal(t, "L00", logs[0].ID, "input must not be reordered")
}

func bucketLabels(b []domain.Bucket) []string {
	out := make([]string, len(b))
	for i := range b {
		out[i] = b[i].Label
	}
	return out
}
