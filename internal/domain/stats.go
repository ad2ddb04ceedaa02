package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bucket is one labelled day of a weekly or monthly summary.
type Bucket struct {
	Label       string
	Date        time.Time
	WeightKg    decimal.Decimal
	Collections int
}

// Summary aggregates collection logs over a period.
type Summary struct {
	From            time.Time
	To              time.Time
	TotalWeightKg   decimal.Decimal
	Collections     int
	AverageWeightKg decimal.Decimal
	Buckets         []Bucket
}

type DailyCollection struct {
	Date        time.Time
	WeightKg    decimal.Decimal
	Collections int
}

type DailyWeight struct {
	Date     time.Time
	WeightKg decimal.Decimal
}

type ReportType string

const (
	ReportZone    ReportType = "zone"
	ReportVehicle ReportType = "vehicle"
)

func (t ReportType) IsValid() bool {
	return t == ReportZone || t == ReportVehicle
}

// Report is a filtered view of collection activity for one zone or vehicle.
// From and To are inclusive calendar days.
type Report struct {
	Type            ReportType
	TargetID        string
	TargetName      string
	From            time.Time
	To              time.Time
	GeneratedAt     time.Time
	TotalWeightKg   decimal.Decimal
	Collections     int
	AverageWeightKg decimal.Decimal
	Daily           []DailyCollection
	Logs            []*CollectionLog
}
