package dto

import (
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
)

type BucketResponse struct {
	Label       string          `json:"label"`
	Date        string          `json:"date"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	Collections int             `json:"collections"`
}

type SummaryResponse struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	TotalWeightKg   decimal.Decimal  `json:"totalWeightKg"`
	Collections     int              `json:"collections"`
	AverageWeightKg decimal.Decimal  `json:"averageWeightKg"`
	Buckets         []BucketResponse `json:"buckets"`
}

func Summary(s domain.Summary) SummaryResponse {
	res := SummaryResponse{
		From:            s.From.Format(dateLayout),
		To:              s.To.Format(dateLayout),
		TotalWeightKg:   s.TotalWeightKg,
		Collections:     s.Collections,
		AverageWeightKg: s.AverageWeightKg,
		Buckets:         make([]BucketResponse, 0, len(s.Buckets)),
	}
	for _, b := range s.Buckets {
		res.Buckets = append(res.Buckets, BucketResponse{
			Label:       b.Label,
			Date:        b.Date.Format(dateLayout),
			WeightKg:    b.WeightKg,
			Collections: b.Collections,
		})
	}
	return res
}

type DailyCollectionResponse struct {
	Date        string          `json:"date"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	Collections int             `json:"collections"`
}

func DailyCollections(in []domain.DailyCollection) []DailyCollectionResponse {
	out := make([]DailyCollectionResponse, 0, len(in))
	for _, d := range in {
		out = append(out, DailyCollectionResponse{Date: d.Date.Format(dateLayout), WeightKg: d.WeightKg, Collections: d.Collections})
	}
	return out
}

type DailyWeightResponse struct {
	Date     string          `json:"date"`
	WeightKg decimal.Decimal `json:"weightKg"`
}

func DailyWeights(in []domain.DailyWeight) []DailyWeightResponse {
	out := make([]DailyWeightResponse, 0, len(in))
	for _, d := range in {
		out = append(out, DailyWeightResponse{Date: d.Date.Format(dateLayout), WeightKg: d.WeightKg})
	}
	return out
}

// ReportRequest leaves every filter optional so the service can list the missing ones.
type ReportRequest struct {
	Type     string `json:"type" validate:"omitempty,oneof=zone vehicle"`
	TargetID string `json:"targetId"`
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// Dates returns the parsed range; unset dates stay zero.
func (r ReportRequest) Dates() (from, to time.Time) {
	if r.From != "" {
		from, _ = time.Parse(dateLayout, r.From)
	}
	if r.To != "" {
		to, _ = time.Parse(dateLayout, r.To)
	}
	return from, to
}

type ReportResponse struct {
	Type            string                    `json:"type"`
	TargetID        string                    `json:"targetId"`
	TargetName      string                    `json:"targetName"`
	From            string                    `json:"from"`
	To              string                    `json:"to"`
	GeneratedAt     time.Time                 `json:"generatedAt"`
	TotalWeightKg   decimal.Decimal           `json:"totalWeightKg"`
	Collections     int                       `json:"collections"`
	AverageWeightKg decimal.Decimal           `json:"averageWeightKg"`
	Daily           []DailyCollectionResponse `json:"daily"`
	Logs            []CollectionLogResponse   `json:"logs"`
}

func Report(r *domain.Report) ReportResponse {
	return ReportResponse{
		Type:            string(r.Type),
		TargetID:        r.TargetID,
		TargetName:      r.TargetName,
		From:            r.From.Format(dateLayout),
		To:              r.To.Format(dateLayout),
		GeneratedAt:     r.GeneratedAt,
		TotalWeightKg:   r.TotalWeightKg,
		Collections:     r.Collections,
		AverageWeightKg: r.AverageWeightKg,
		Daily:           DailyCollections(r.Daily),
		Logs:            CollectionLogs(r.Logs),
	}
}
