package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/obs"
	"wastewise-admin-service/internal/ports"
)

// matrixQuery is the /v2/matrix body. Index 0 of Locations is always the origin.
type matrixQuery struct {
	Locations    [][]float64 `json:"locations"`
	Sources      []int       `json:"sources"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Units        string      `json:"units"`
}

type matrixReply struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

func newMatrixQuery(origin domain.Coordinates, stops []string, coords map[string]domain.Coordinates) matrixQuery {
	q := matrixQuery{
		Locations:    [][]float64{origin.CoordsToList()},
		Sources:      []int{0},
		Destinations: make([]int, 0, len(stops)),
		Metrics:      []string{"distance", "duration"},
		Units:        "m",
	}
	for i, stop := range stops {
		q.Locations = append(q.Locations, coords[stop].CoordsToList())
		q.Destinations = append(q.Destinations, i+1)
	}
	return q
}

// legs pairs the single source row with the stops it was built for.
func (r matrixReply) legs(stops []string) (map[string]ports.DistanceResult, error) {
	if len(r.Distances) != 1 || len(r.Durations) != 1 {
		return nil, fmt.Errorf("matrix reply has %d distance rows and %d duration rows, want 1", len(r.Distances), len(r.Durations))
	}
	meters, seconds := r.Distances[0], r.Durations[0]
	if len(meters) != len(stops) || len(seconds) != len(stops) {
		return nil, fmt.Errorf("matrix row covers %d/%d stops, want %d", len(meters), len(seconds), len(stops))
	}

	out := make(map[string]ports.DistanceResult, len(stops))
	for i, stop := range stops {
		if meters[i] == nil || seconds[i] == nil {
			return nil, &ports.StopError{Stop: stop, Err: ports.ErrUnreachableStop}
		}
		out[stop] = ports.DistanceResult{
			DistanceMeters:  int(math.Round(*meters[i])),
			DurationSeconds: int(math.Round(*seconds[i])),
		}
	}
	return out, nil
}

// fetchMatrixRow measures origin against every stop with one matrix call.
// coords must hold an entry for each stop.
func (o *ORSDistanceProvider) fetchMatrixRow(
	ctx context.Context,
	origin domain.Coordinates,
	stops []string,
	coords map[string]domain.Coordinates,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "ors.fetchMatrixRow")(&err)

	if len(stops) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}
	for _, stop := range stops {
		if _, ok := coords[stop]; !ok {
			return nil, fmt.Errorf("no coordinates for stop %q", stop)
		}
	}

	payload, err := json.Marshal(newMatrixQuery(origin, stops, coords))
	if err != nil {
		return nil, fmt.Errorf("marshal matrix query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("matrix request: %w", err)
	}
	defer resp.Body.Close()

	var reply matrixReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decode matrix reply: %w", err)
	}
	return reply.legs(stops)
}
