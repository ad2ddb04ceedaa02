package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/obs"
	"wastewise-admin-service/internal/ports"
)

// PickupService serves the shared collection state the admin panels read:
// lookups, statistics and the panel dashboards.
type PickupService struct {
	repos       ports.Repositories
	cache       ports.SummaryCache
	cacheTTL    time.Duration
	recentLimit int
	logg        *logger.Logger
	now         func() time.Time
}

type PickupOptions struct {
	// Cache is optional. Without it every summary is computed on demand.
	Cache          ports.SummaryCache
	CacheTTL       time.Duration
	RecentLogLimit int
	Logger         *logger.Logger
	Now            func() time.Time
}

func NewPickupService(repos ports.Repositories, opts PickupOptions) *PickupService {
	s := &PickupService{
		repos:       repos,
		cache:       opts.Cache,
		cacheTTL:    opts.CacheTTL,
		recentLimit: opts.RecentLogLimit,
		logg:        opts.Logger,
		now:         opts.Now,
	}
	if s.recentLimit <= 0 {
		s.recentLimit = DefaultRecentLogLimit
	}
	if s.logg == nil {
		s.logg = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *PickupService) Snapshot(ctx context.Context) (*Snapshot, error) {
	return LoadSnapshot(ctx, s.repos)
}

func (s *PickupService) WorkerName(ctx context.Context, id string) (string, error) {
	w, err := s.repos.Workers.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return UnknownWorker, nil
		}
		return "", fmt.Errorf("worker name: %w", err)
	}
	return w.Name, nil
}

func (s *PickupService) RoutesByZone(ctx context.Context, zoneID string) ([]*domain.Route, error) {
	routes, err := s.repos.Routes.ListByZone(ctx, strings.TrimSpace(zoneID))
	if err != nil {
		return nil, fmt.Errorf("routes by zone %q: %w", zoneID, err)
	}
	return routes, nil
}

func (s *PickupService) WeeklySummary(ctx context.Context) (domain.Summary, error) {
	now := s.now()
	key := "weekly:" + domain.StartOfDay(now).Format(time.DateOnly)
	return s.cachedSummary(ctx, key, func(logs []*domain.CollectionLog) domain.Summary {
		return WeeklySummary(logs, now)
	})
}

func (s *PickupService) MonthlySummary(ctx context.Context) (domain.Summary, error) {
	now := s.now()
	key := "monthly:" + now.UTC().Format("2006-01")
	return s.cachedSummary(ctx, key, func(logs []*domain.CollectionLog) domain.Summary {
		return MonthlySummary(logs, now)
	})
}

// cachedSummary reads through the summary cache. Cache failures degrade to a
// fresh computation.
func (s *PickupService) cachedSummary(
	ctx context.Context,
	key string,
	compute func([]*domain.CollectionLog) domain.Summary,
) (_ domain.Summary, err error) {
	defer obs.Time(ctx, "stats."+strings.SplitN(key, ":", 2)[0])(&err)

	// gen stays empty when the cache is unusable; nothing is written then.
	var gen string
	if s.cache != nil {
		if g, err := s.cache.Generation(ctx); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "err", err.Error()), "summary cache read failed")
		} else {
			gen = g
		}
	}

	if gen != "" {
		payload, ok, err := s.cache.Get(ctx, gen, key)
		switch {
		case err != nil:
			s.logg.Warn(s.logg.WithField(ctx, "err", err.Error()), "summary cache read failed")
		case ok:
			var out domain.Summary
			if err := json.Unmarshal(payload, &out); err == nil {
				return out, nil
			}
			s.logg.Warn(s.logg.WithField(ctx, "key", key), "summary cache entry unreadable")
		}
	}

	logs, err := s.repos.Logs.List(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summary %s: list logs: %w", key, err)
	}
	out := compute(logs)

	if gen != "" {
		if payload, err := json.Marshal(out); err == nil {
			if err := s.cache.Put(ctx, gen, key, payload, s.cacheTTL); err != nil {
				s.logg.Warn(s.logg.WithField(ctx, "err", err.Error()), "summary cache write failed")
			}
		}
	}
	return out, nil
}

// InvalidateSummaries drops cached summaries after a collection log change.
func (s *PickupService) InvalidateSummaries(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logg.Error(ctx, "summary cache invalidate failed", err)
	}
}

func (s *PickupService) RecentLogs(ctx context.Context, limit int) ([]*domain.CollectionLog, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	logs, err := s.repos.Logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent logs: %w", err)
	}
	return RecentLogs(logs, limit), nil
}

// DateRange is an inclusive span of UTC calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// MaxRangeDays bounds daily series requests.
const MaxRangeDays = 366

func (r DateRange) validate() error {
	missing := []string{}
	if r.From.IsZero() {
		missing = append(missing, "from")
	}
	if r.To.IsZero() {
		missing = append(missing, "to")
	}
	if len(missing) > 0 {
		return validationError("date range is incomplete", map[string]any{"missing": missing})
	}
	from, to := domain.StartOfDay(r.From), domain.StartOfDay(r.To)
	if from.After(to) {
		return validationError("from must not be after to", map[string]string{"from": from.Format(time.DateOnly), "to": to.Format(time.DateOnly)})
	}
	if to.Sub(from) >= MaxRangeDays*day {
		return validationError(fmt.Sprintf("date range must not exceed %d days", MaxRangeDays), nil)
	}
	return nil
}

// logFilter turns the inclusive day range into the repository's half-open window.
func (r DateRange) logFilter() ports.LogFilter {
	return ports.LogFilter{From: domain.StartOfDay(r.From), To: domain.StartOfDay(r.To).Add(day)}
}

func (s *PickupService) ZoneDaily(ctx context.Context, zoneID string, r DateRange) ([]domain.DailyCollection, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	f := r.logFilter()
	f.ZoneID = zoneID
	logs, err := s.repos.Logs.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("zone daily %q: %w", zoneID, err)
	}
	return ZoneDailyCollections(logs, zoneID, r.From, r.To), nil
}

func (s *PickupService) VehicleDaily(ctx context.Context, vehicleID string, r DateRange) ([]domain.DailyWeight, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	f := r.logFilter()
	f.VehicleID = vehicleID
	logs, err := s.repos.Logs.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("vehicle daily %q: %w", vehicleID, err)
	}
	return VehicleDailyWeight(logs, vehicleID, r.From, r.To), nil
}

func (s *PickupService) HomePanel(ctx context.Context) (HomePanel, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return HomePanel{}, err
	}
	return BuildHomePanel(snap, s.now(), s.recentLimit), nil
}

func (s *PickupService) WorkerPanel(ctx context.Context) (WorkerPanel, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return WorkerPanel{}, err
	}
	return BuildWorkerPanel(snap), nil
}

func (s *PickupService) ZonePanel(ctx context.Context) (ZonePanel, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return ZonePanel{}, err
	}
	return BuildZonePanel(snap), nil
}

func (s *PickupService) RoutePanel(ctx context.Context) (RoutePanel, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return RoutePanel{}, err
	}
	return BuildRoutePanel(snap), nil
}

func (s *PickupService) VehiclePanel(ctx context.Context) (VehiclePanel, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return VehiclePanel{}, err
	}
	return BuildVehiclePanel(snap, s.now()), nil
}

func (s *PickupService) AssignmentPanel(ctx context.Context) (AssignmentPanel, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return AssignmentPanel{}, err
	}
	return BuildAssignmentPanel(snap), nil
}
