package services

import (
	"slices"
	"strconv"
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
)

// DefaultRecentLogLimit caps RecentLogs when no limit is given.
const DefaultRecentLogLimit = 10

const day = 24 * time.Hour

// dayTotals accumulates weight and count per UTC calendar day.
type dayTotals struct {
	weight map[time.Time]decimal.Decimal
	count  map[time.Time]int
}

func tally(logs []*domain.CollectionLog, from, to time.Time, keep func(*domain.CollectionLog) bool) dayTotals {
	t := dayTotals{weight: map[time.Time]decimal.Decimal{}, count: map[time.Time]int{}}
	for _, l := range logs {
		d := l.Day()
		if d.Before(from) || d.After(to) {
			continue
		}
		if keep != nil && !keep(l) {
			continue
		}
		t.weight[d] = t.weight[d].Add(l.WeightKg)
		t.count[d]++
	}
	return t
}

func days(from, to time.Time) []time.Time {
	from, to = domain.StartOfDay(from), domain.StartOfDay(to)
	var out []time.Time
	for d := from; !d.After(to); d = d.Add(day) {
		out = append(out, d)
	}
	return out
}

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func average(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func summarize(logs []*domain.CollectionLog, from, to time.Time, label func(time.Time) string) domain.Summary {
	t := tally(logs, from, to, nil)

	s := domain.Summary{From: from, To: to, TotalWeightKg: decimal.Zero, Buckets: []domain.Bucket{}}
	for _, d := range days(from, to) {
		w := t.weight[d]
		s.Buckets = append(s.Buckets, domain.Bucket{
			Label:       label(d),
			Date:        d,
			WeightKg:    round2(w),
			Collections: t.count[d],
		})
		s.TotalWeightKg = s.TotalWeightKg.Add(w)
		s.Collections += t.count[d]
	}
	s.AverageWeightKg = average(s.TotalWeightKg, s.Collections)
	s.TotalWeightKg = round2(s.TotalWeightKg)
	return s
}

// WeeklySummary covers the seven UTC calendar days ending on now's day.
// Buckets are chronological and labelled Mon, Tue, ...
func WeeklySummary(logs []*domain.CollectionLog, now time.Time) domain.Summary {
	to := domain.StartOfDay(now)
	from := to.AddDate(0, 0, -6)
	return summarize(logs, from, to, func(d time.Time) string {
		return d.Weekday().String()[:3]
	})
}

// MonthlySummary covers every day of now's UTC calendar month, labelled "1".."31".
func MonthlySummary(logs []*domain.CollectionLog, now time.Time) domain.Summary {
	u := now.UTC()
	from := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return summarize(logs, from, to, func(d time.Time) string {
		return strconv.Itoa(d.Day())
	})
}

// ZoneDailyCollections is the zone's per-day series over [from, to], zero days included.
func ZoneDailyCollections(logs []*domain.CollectionLog, zoneID string, from, to time.Time) []domain.DailyCollection {
	from, to = domain.StartOfDay(from), domain.StartOfDay(to)
	t := tally(logs, from, to, func(l *domain.CollectionLog) bool { return l.ZoneID == zoneID })

	out := []domain.DailyCollection{}
	for _, d := range days(from, to) {
		out = append(out, domain.DailyCollection{Date: d, WeightKg: round2(t.weight[d]), Collections: t.count[d]})
	}
	return out
}

// VehicleDailyWeight is the vehicle's per-day weight over [from, to], zero days included.
func VehicleDailyWeight(logs []*domain.CollectionLog, vehicleID string, from, to time.Time) []domain.DailyWeight {
	from, to = domain.StartOfDay(from), domain.StartOfDay(to)
	t := tally(logs, from, to, func(l *domain.CollectionLog) bool { return l.VehicleID == vehicleID })

	out := []domain.DailyWeight{}
	for _, d := range days(from, to) {
		out = append(out, domain.DailyWeight{Date: d, WeightKg: round2(t.weight[d])})
	}
	return out
}

// RecentLogs returns the newest logs by start time, at most limit of them.
func RecentLogs(logs []*domain.CollectionLog, limit int) []*domain.CollectionLog {
	if limit <= 0 {
		limit = DefaultRecentLogLimit
	}
	sorted := slices.Clone(logs)
	slices.SortStableFunc(sorted, func(a, b *domain.CollectionLog) int {
		return b.StartTime.Compare(a.StartTime)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	if sorted == nil {
		sorted = []*domain.CollectionLog{}
	}
	return sorted
}

// WeightByVehicle sums collected weight per vehicle over [from, to].
func WeightByVehicle(logs []*domain.CollectionLog, from, to time.Time) map[string]decimal.Decimal {
	from, to = domain.StartOfDay(from), domain.StartOfDay(to)
	out := map[string]decimal.Decimal{}
	for _, l := range logs {
		d := l.Day()
		if d.Before(from) || d.After(to) {
			continue
		}
		out[l.VehicleID] = out[l.VehicleID].Add(l.WeightKg)
	}
	for k, v := range out {
		out[k] = round2(v)
	}
	return out
}
