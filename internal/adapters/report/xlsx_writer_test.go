package report

import (
	"bytes"
	"testing"
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.Report {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	worker := "w1"
	end := day.Add(9 * time.Hour)
	return &domain.Report{
		Type:            domain.ReportZone,
		TargetID:        "z1",
		TargetName:      "North",
		From:            day,
		To:              day.AddDate(0, 0, 1),
		GeneratedAt:     day.Add(48 * time.Hour),
		TotalWeightKg:   decimal.RequireFromString("150.5"),
		Collections:     2,
		AverageWeightKg: decimal.RequireFromString("75.25"),
		Daily: []domain.DailyCollection{
			{Date: day, WeightKg: decimal.RequireFromString("100"), Collections: 1},
			{Date: day.AddDate(0, 0, 1), WeightKg: decimal.RequireFromString("50.5"), Collections: 1},
		},
		Logs: []*domain.CollectionLog{
			{ID: "l1", ZoneID: "z1", VehicleID: "v1", WorkerID: &worker, StartTime: day.Add(8 * time.Hour), EndTime: &end, WeightKg: decimal.RequireFromString("100")},
			{ID: "l2", ZoneID: "z1", VehicleID: "v2", StartTime: day.Add(32 * time.Hour), WeightKg: decimal.RequireFromString("50.5")},
		},
	}
}

func TestXLSXWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewXLSXWriter()
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != SummarySheet || sheets[1] != DailySheet || sheets[2] != LogsSheet {
		t.Fatalf("sheets = %v", sheets)
	}

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatal(err)
	}
	if summary[2][1] != "North" || summary[5][1] != "2" {
		t.Errorf("summary rows = %v", summary)
	}

	daily, err := f.GetRows(DailySheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(daily) != 3 {
		t.Fatalf("daily rows = %d, want 3", len(daily))
	}
	if daily[2][0] != "2026-03-03" || daily[2][1] != "50.5" {
		t.Errorf("daily[2] = %v", daily[2])
	}

	logs, err := f.GetRows(LogsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 3 {
		t.Fatalf("log rows = %d, want 3", len(logs))
	}
	if logs[1][0] != "l1" || logs[1][3] != "w1" || logs[1][6] != "2026-03-02T09:00:00Z" {
		t.Errorf("logs[1] = %v", logs[1])
	}
}

func TestXLSXWriter_FileName(t *testing.T) {
	got := NewXLSXWriter().FileName(sampleReport())
	if got != "wastewise-zone-z1-20260302-20260303.xlsx" {
		t.Errorf("FileName = %q", got)
	}
}
