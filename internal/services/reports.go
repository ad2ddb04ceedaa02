package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/obs"

	"github.com/shopspring/decimal"
)

// ReportFilter selects the logs of one zone or vehicle over an inclusive day range.
type ReportFilter struct {
	Type     string
	TargetID string
	From     time.Time
	To       time.Time
}

// missing lists the filters the admin left empty, in form order.
func (f ReportFilter) missing() []string {
	var out []string
	if strings.TrimSpace(f.Type) == "" {
		out = append(out, "type")
	}
	if strings.TrimSpace(f.TargetID) == "" {
		out = append(out, "targetId")
	}
	if f.From.IsZero() || f.To.IsZero() {
		out = append(out, "dateRange")
	}
	return out
}

type ReportService struct {
	pickup *PickupService
}

func NewReportService(pickup *PickupService) *ReportService {
	return &ReportService{pickup: pickup}
}

// Generate validates the filter and builds the report. No report is produced
// while any filter is missing.
func (s *ReportService) Generate(ctx context.Context, f ReportFilter) (_ *domain.Report, err error) {
	defer obs.Time(ctx, "reports.Generate")(&err)

	if missing := f.missing(); len(missing) > 0 {
		return nil, validationError("please select all filters", map[string]any{"missing": missing})
	}
	typ := domain.ReportType(strings.TrimSpace(f.Type))
	if !typ.IsValid() {
		return nil, validationError("invalid report type", map[string]string{"type": "must be zone or vehicle"})
	}
	r := DateRange{From: f.From, To: f.To}
	if err := r.validate(); err != nil {
		return nil, err
	}

	target := strings.TrimSpace(f.TargetID)
	report := &domain.Report{
		Type:        typ,
		TargetID:    target,
		From:        domain.StartOfDay(f.From),
		To:          domain.StartOfDay(f.To),
		GeneratedAt: s.pickup.now().UTC(),
	}

	filter := r.logFilter()
	repos := s.pickup.repos
	switch typ {
	case domain.ReportZone:
		z, err := repos.Zones.GetByID(ctx, target)
		if err != nil {
			return nil, repoError(err, "zone", target)
		}
		report.TargetName = z.Name
		filter.ZoneID = target
	case domain.ReportVehicle:
		v, err := repos.Vehicles.GetByID(ctx, target)
		if err != nil {
			return nil, repoError(err, "vehicle", target)
		}
		report.TargetName = v.RegistrationNumber
		filter.VehicleID = target
	}

	logs, err := repos.Logs.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("generate report: find logs: %w", err)
	}
	report.Logs = logs

	for _, d := range days(report.From, report.To) {
		report.Daily = append(report.Daily, domain.DailyCollection{Date: d, WeightKg: decimal.Zero})
	}
	index := make(map[time.Time]int, len(report.Daily))
	for i, d := range report.Daily {
		index[d.Date] = i
	}

	total := decimal.Zero
	for _, l := range logs {
		i, ok := index[l.Day()]
		if !ok {
			continue
		}
		report.Daily[i].WeightKg = report.Daily[i].WeightKg.Add(l.WeightKg)
		report.Daily[i].Collections++
		total = total.Add(l.WeightKg)
	}
	for i := range report.Daily {
		report.Daily[i].WeightKg = round2(report.Daily[i].WeightKg)
	}
	report.Collections = len(logs)
	report.AverageWeightKg = average(total, len(logs))
	report.TotalWeightKg = round2(total)
	return report, nil
}
