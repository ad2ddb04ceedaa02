package distance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/obs"
	"wastewise-admin-service/internal/ports"
)

// ErrNotConfigured is returned when no OpenRouteService API key is set.
var ErrNotConfigured = errors.New("openrouteservice api key is not configured")

// ORSDistanceProvider resolves collection stops to coordinates and measures the
// legs between them with OpenRouteService. Geocodes and matrix rows are read
// through the caches first; fresh results are written back best-effort.
//
// The provider is safe for concurrent use.
type ORSDistanceProvider struct {
	session       *http.Client
	apiKey        string
	baseURL       string
	profile       string
	country       string
	distanceCache ports.DistanceCache
	geocodeCache  ports.GeocodeCache
	logg          *logger.Logger
	backoff       time.Duration
}

// Option tweaks an ORSDistanceProvider.
type Option func(*ORSDistanceProvider)

// WithHTTPClient replaces the default 10s-timeout client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *ORSDistanceProvider) { o.session = c }
}

// WithBackoff sets the initial retry delay.
func WithBackoff(d time.Duration) Option {
	return func(o *ORSDistanceProvider) { o.backoff = d }
}

func NewORSDistanceProvider(
	cfg config.ORSConfig,
	distanceCache ports.DistanceCache,
	geocodeCache ports.GeocodeCache,
	logg *logger.Logger,
	opts ...Option,
) (*ORSDistanceProvider, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	if logg == nil {
		logg = logger.Nop()
	}

	provider := &ORSDistanceProvider{
		session:       &http.Client{Timeout: 10 * time.Second},
		apiKey:        strings.TrimSpace(cfg.APIKey),
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		profile:       cfg.Profile,
		country:       cfg.Country,
		distanceCache: distanceCache,
		geocodeCache:  geocodeCache,
		logg:          logg,
		backoff:       200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(provider)
	}
	return provider, nil
}

// normalize collapses whitespace so cache keys stay stable.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *ORSDistanceProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, error) {
	normOrigin := normalize(origin)
	normDestination := normalize(destination)
	if normOrigin == "" || normDestination == "" {
		return ports.DistanceResult{}, errors.New("get ORS distance: origin and destination must be non-empty")
	}
	if normOrigin == normDestination {
		return ports.DistanceResult{}, nil
	}

	results, err := o.GetDistances(ctx, normOrigin, []string{normDestination})
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("get distances %q -> %q: %w", normOrigin, normDestination, err)
	}

	result, ok := results[normDestination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("no distance result for %q -> %q", origin, destination)
	}
	return result, nil
}

// GetDistances measures one origin against many stops, keyed by normalised stop.
// Stops equal to the origin are skipped.
func (o *ORSDistanceProvider) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "ors.GetDistances")(&err)

	normOrigin := normalize(origin)
	if normOrigin == "" {
		return nil, errors.New("origin must be non-empty")
	}

	seen := make(map[string]struct{}, len(destinations))
	destList := make([]string, 0, len(destinations))
	for _, d := range destinations {
		nd := normalize(d)
		if nd == "" || nd == normOrigin {
			continue
		}
		if _, ok := seen[nd]; ok {
			continue
		}
		seen[nd] = struct{}{}
		destList = append(destList, nd)
	}
	if len(destList) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	hits := map[string]ports.DistanceResult{}
	if o.distanceCache != nil {
		cached, err := o.distanceCache.GetMany(ctx, normOrigin, destList)
		if err != nil {
			o.logg.Warn(o.logg.WithField(ctx, "err", err.Error()), "distance cache read failed")
		} else {
			hits = cached
		}
	}

	misses := make([]string, 0, len(destList))
	for _, d := range destList {
		if _, ok := hits[d]; !ok {
			misses = append(misses, d)
		}
	}
	if len(misses) == 0 {
		return hits, nil
	}

	coords, err := o.resolve(ctx, append([]string{normOrigin}, misses...))
	if err != nil {
		return nil, fmt.Errorf("retrieving coordinates: %w", err)
	}

	fetched, err := o.fetchMatrixRow(ctx, coords[normOrigin], misses, coords)
	if err != nil {
		return nil, fmt.Errorf("fetching matrix row: %w", err)
	}

	var missing []string
	for _, d := range misses {
		if _, ok := fetched[d]; !ok {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("ORS matrix service did not return the following stops: %s", strings.Join(missing, ", "))
	}

	if o.distanceCache != nil {
		if err := o.distanceCache.PutMany(ctx, normOrigin, fetched); err != nil {
			o.logg.Warn(o.logg.WithField(ctx, "err", err.Error()), "distance cache write failed")
		}
	}

	out := make(map[string]ports.DistanceResult, len(hits)+len(fetched))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fetched {
		out[k] = v
	}
	return out, nil
}

// resolve returns coordinates for every address, geocoding only cache misses.
func (o *ORSDistanceProvider) resolve(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	coords := map[string]domain.Coordinates{}
	if o.geocodeCache != nil {
		cached, err := o.geocodeCache.GetMany(ctx, addresses)
		if err != nil {
			o.logg.Warn(o.logg.WithField(ctx, "err", err.Error()), "geocode cache read failed")
		} else {
			coords = cached
		}
	}

	misses := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if _, ok := coords[a]; !ok {
			misses = append(misses, a)
		}
	}
	if len(misses) == 0 {
		return coords, nil
	}

	fresh, err := o.geocodeMany(ctx, misses)
	if err != nil {
		return nil, err
	}
	if o.geocodeCache != nil && len(fresh) > 0 {
		if err := o.geocodeCache.PutMany(ctx, fresh); err != nil {
			o.logg.Warn(o.logg.WithField(ctx, "err", err.Error()), "geocode cache write failed")
		}
	}
	for k, v := range fresh {
		coords[k] = v
	}

	for _, a := range addresses {
		if _, ok := coords[a]; !ok {
			return nil, fmt.Errorf("missing coordinate for %q", a)
		}
	}
	return coords, nil
}
