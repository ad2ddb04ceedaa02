package report

import (
	"fmt"
	"io"
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the generated workbook.
const (
	SummarySheet = "Summary"
	DailySheet   = "Daily"
	LogsSheet    = "Logs"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// XLSXWriter renders reports as Excel workbooks.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter { return &XLSXWriter{} }

func (XLSXWriter) ContentType() string { return xlsxContentType }

func (XLSXWriter) FileName(r *domain.Report) string {
	return fmt.Sprintf("wastewise-%s-%s-%s-%s.xlsx",
		r.Type, r.TargetID, r.From.Format("20060102"), r.To.Format("20060102"))
}

func (XLSXWriter) Write(w io.Writer, r *domain.Report) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{DailySheet, LogsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %s: %w", name, err)
		}
	}

	summary := [][]any{
		{"Report type", string(r.Type)},
		{"Target", r.TargetID},
		{"Name", r.TargetName},
		{"From", r.From.Format(time.DateOnly)},
		{"To", r.To.Format(time.DateOnly)},
		{"Collections", r.Collections},
		{"Total weight (kg)", r.TotalWeightKg.InexactFloat64()},
		{"Average weight (kg)", r.AverageWeightKg.InexactFloat64()},
		{"Generated at", r.GeneratedAt.Format(time.RFC3339)},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(summary)), header); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	daily := [][]any{{"Date", "Weight (kg)", "Collections"}}
	for _, d := range r.Daily {
		daily = append(daily, []any{d.Date.Format(time.DateOnly), d.WeightKg.InexactFloat64(), d.Collections})
	}
	if err := writeRows(f, DailySheet, daily); err != nil {
		return err
	}

	logs := [][]any{{"ID", "Zone", "Vehicle", "Worker", "Route", "Start", "End", "Weight (kg)"}}
	for _, l := range r.Logs {
		logs = append(logs, []any{
			l.ID,
			l.ZoneID,
			l.VehicleID,
			deref(l.WorkerID),
			deref(l.RouteID),
			l.StartTime.Format(time.RFC3339),
			formatOptionalTime(l.EndTime),
			l.WeightKg.InexactFloat64(),
		})
	}
	if err := writeRows(f, LogsSheet, logs); err != nil {
		return err
	}

	for _, sheet := range []string{DailySheet, LogsSheet} {
		if err := f.SetRowStyle(sheet, 1, 1, header); err != nil {
			return fmt.Errorf("style %s header: %w", sheet, err)
		}
	}
	if err := f.SetColWidth(SummarySheet, "A", "B", 24); err != nil {
		return fmt.Errorf("size summary columns: %w", err)
	}
	if err := f.SetColWidth(LogsSheet, "A", "H", 20); err != nil {
		return fmt.Errorf("size log columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
