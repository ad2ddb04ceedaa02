package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/obs"
	"wastewise-admin-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// maxGeocodeLookups bounds concurrent /geocode/search calls.
const maxGeocodeLookups = 4

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// geocodeMany resolves each distinct address with /geocode/search, taking the
// best hit. The first failure cancels the outstanding lookups.
func (o *ORSDistanceProvider) geocodeMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.geocodeMany")(&err)

	out := make(map[string]domain.Coordinates, len(addresses))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxGeocodeLookups)

	seen := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		norm := normalize(a)
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}

		g.Go(func() error {
			c, err := o.geocodeOne(ctx, norm)
			if err != nil {
				return err
			}
			mu.Lock()
			out[norm] = c
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *ORSDistanceProvider) geocodeOne(ctx context.Context, address string) (domain.Coordinates, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		if o.country != "" {
			q.Set("boundary.country", o.country)
		}
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, &ports.StopError{Stop: address, Err: ports.ErrUnknownStop}
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", address)
	}
	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}
