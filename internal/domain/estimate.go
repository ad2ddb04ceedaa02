package domain

import "time"

// Coordinates of a geocoded collection stop, in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// CoordsToList returns [lon, lat], the order OpenRouteService expects.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// A single stop on an estimated route, reached Offset after departure.
type EstimateStop struct {
	Address         string
	ArriveAt        time.Time
	OffsetSeconds   int
	DistanceMeters  int
	DurationSeconds int
}

// The output of a route time estimation. It describes the ordered stops,
// aggregate metrics and the humanised estimate.
type RouteEstimate struct {
	RouteID              string
	DepartAt             time.Time
	Stops                []EstimateStop
	TotalDistanceMeters  int
	TotalDurationSeconds int
	Optimized            bool
	ReturnToStart        bool
	EstimatedTime        string
	Applied              bool
}
