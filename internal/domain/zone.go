package domain

import "time"

// A geographic collection area.
type Zone struct {
	ID           string
	Name         string
	AreaCoverage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
