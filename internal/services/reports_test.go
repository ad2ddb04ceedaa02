package services

import (
	"context"
	"testing"
	"time"

	"wastewise-admin-service/internal/domain"
	apperrors "wastewise-admin-service/internal/platform/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture(t *testing.T) *ReportService {
	t.Helper()
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.zones.Create(ctx, &domain.Zone{ID: "Z1", Name: "North"}))
	require.NoError(t, store.vehicles.Create(ctx, &domain.Vehicle{ID: "V1", RegistrationNumber: "GT-1001"}))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	logs := []*domain.CollectionLog{
		{ID: "L1", ZoneID: "Z1", VehicleID: "V1", StartTime: day.Add(8 * time.Hour), WeightKg: decimal.NewFromInt(100)},
		{ID: "L2", ZoneID: "Z1", VehicleID: "V1", StartTime: day.Add(10 * time.Hour), WeightKg: decimal.RequireFromString("20.5")},
		{ID: "L3", ZoneID: "Z1", VehicleID: "V2", StartTime: day.Add(26 * time.Hour), WeightKg: decimal.NewFromInt(30)},
		{ID: "L4", ZoneID: "Z2", VehicleID: "V1", StartTime: day.Add(27 * time.Hour), WeightKg: decimal.NewFromInt(999)},
		// outside the range
		{ID: "L5", ZoneID: "Z1", VehicleID: "V1", StartTime: day.AddDate(0, 0, 5), WeightKg: decimal.NewFromInt(999)},
	}
	for _, l := range logs {
		require.NoError(t, store.logs.Create(ctx, l))
	}

	pickup := NewPickupService(store.repos(), PickupOptions{Now: func() time.Time { return fixedNow }})
	return NewReportService(pickup)
}

func TestGenerateRequiresEveryFilter(t *testing.T) {
	svc := reportFixture(t)

	_, err := svc.Generate(context.Background(), ReportFilter{Type: "zone"})
	require.Error(t, err)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code())
	assert.Equal(t, "please select all filters", appErr.Message())
	assert.Equal(t, map[string]any{"missing": []string{"targetId", "dateRange"}}, appErr.Details())
}

func TestGenerateRejectsBadFilters(t *testing.T) {
	svc := reportFixture(t)
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		filter ReportFilter
		code   apperrors.Code
	}{
		{"unknown type", ReportFilter{Type: "worker", TargetID: "W1", From: from, To: from}, apperrors.CodeValidation},
		{"from after to", ReportFilter{Type: "zone", TargetID: "Z1", From: from.AddDate(0, 0, 1), To: from}, apperrors.CodeValidation},
		{"unknown zone", ReportFilter{Type: "zone", TargetID: "Z404", From: from, To: from}, apperrors.CodeNotFound},
		{"unknown vehicle", ReportFilter{Type: "vehicle", TargetID: "V404", From: from, To: from}, apperrors.CodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tc.filter)
			assert.True(t, apperrors.IsCode(err, tc.code), "got %v", err)
		})
	}
}

func TestGenerateZoneReport(t *testing.T) {
	svc := reportFixture(t)
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	r, err := svc.Generate(context.Background(), ReportFilter{Type: "zone", TargetID: "Z1", From: from, To: from.AddDate(0, 0, 2)})
	require.NoError(t, err)

	assert.Equal(t, "North", r.TargetName)
	assert.Equal(t, fixedNow, r.GeneratedAt)
	assert.Equal(t, 3, r.Collections)
	assert.Equal(t, "150.5", r.TotalWeightKg.String())
	assert.Equal(t, "50.17", r.AverageWeightKg.String())
	require.Len(t, r.Daily, 3)
	assert.Equal(t, 2, r.Daily[0].Collections)
	assert.Equal(t, "120.5", r.Daily[0].WeightKg.String())
	assert.Equal(t, 1, r.Daily[1].Collections)
	assert.Equal(t, 0, r.Daily[2].Collections)
	assert.True(t, r.Daily[2].WeightKg.IsZero())
}

func TestGenerateVehicleReport(t *testing.T) {
	svc := reportFixture(t)
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	r, err := svc.Generate(context.Background(), ReportFilter{Type: "vehicle", TargetID: "V1", From: from, To: from.AddDate(0, 0, 1)})
	require.NoError(t, err)

	assert.Equal(t, "GT-1001", r.TargetName)
	assert.Equal(t, 3, r.Collections)
	assert.Equal(t, "1119.5", r.TotalWeightKg.String())
	ids := []string{}
	for _, l := range r.Logs {
		ids = append(ids, l.ID)
	}
	assert.ElementsMatch(t, []string{"L1", "L2", "L4"}, ids)
}
