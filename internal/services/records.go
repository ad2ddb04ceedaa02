package services

import (
	"context"
	"strings"
	"time"

	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/ports"

	"github.com/google/uuid"
)

// RecordService manages workers, zones, routes, vehicles, assignments and
// collection logs.
type RecordService struct {
	repos  ports.Repositories
	pickup *PickupService
	logg   *logger.Logger
	newID  func() string
	now    func() time.Time
}

// NewRecordService wires CRUD to the repositories. pickup may be nil; when set,
// collection log changes invalidate its cached summaries.
func NewRecordService(repos ports.Repositories, pickup *PickupService, logg *logger.Logger) *RecordService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &RecordService{
		repos:  repos,
		pickup: pickup,
		logg:   logg,
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *RecordService) idOrNew(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return s.newID()
}

func (s *RecordService) logsChanged(ctx context.Context) {
	if s.pickup != nil {
		s.pickup.InvalidateSummaries(ctx)
	}
}

// required trims v and records a field error when it is empty.
func required(errs fieldErrors, field, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		errs.add(field, "is required")
	}
	return v
}

// exists reports a missing referenced record as a field error rather than NOT_FOUND.
func exists(ctx context.Context, errs fieldErrors, field, id string, get func(context.Context, string) error) error {
	if id == "" {
		return nil
	}
	err := get(ctx, id)
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		errs.add(field, "does not exist")
		return nil
	}
	return err
}
