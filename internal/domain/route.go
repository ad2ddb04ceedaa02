package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// A path within a zone. EstimatedTime is a human string such as "45 minutes".
type Route struct {
	ID            string
	ZoneID        string
	Name          string
	PathDetails   string
	EstimatedTime string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var estimatedTimePattern = regexp.MustCompile(`(\d+)\s*(hour|minute)s?`)

// ParseEstimatedMinutes reads the first "<n> hour(s)" or "<n> minute(s)" match.
// ok is false when nothing matches.
func ParseEstimatedMinutes(s string) (minutes int, ok bool) {
	m := estimatedTimePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if m[2] == "hour" {
		return n * 60, true
	}
	return n, true
}

// HumanizeMinutes renders a duration as "N minutes", "N hours" or
// "N hours M minutes", with singular units for 1.
func HumanizeMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	if total < 60 {
		return plural(total, "minute")
	}
	h, m := total/60, total%60
	if m == 0 {
		return plural(h, "hour")
	}
	return plural(h, "hour") + " " + plural(m, "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

var stopSeparators = strings.NewReplacer("->", "|", "→", "|", ";", "|")

// Stops splits path details into trimmed, non-empty stop addresses.
func (r *Route) Stops() []string {
	parts := strings.Split(stopSeparators.Replace(r.PathDetails), "|")
	stops := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			stops = append(stops, p)
		}
	}
	return stops
}
