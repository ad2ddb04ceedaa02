package dto

import (
	"time"

	"wastewise-admin-service/internal/domain"
)

type EstimateRequest struct {
	Optimize      bool       `json:"optimize"`
	ReturnToStart bool       `json:"returnToStart"`
	Apply         bool       `json:"apply"`
	DepartAt      *time.Time `json:"departAt"`
}

type EstimateStopResponse struct {
	Address         string    `json:"address"`
	ArriveAt        time.Time `json:"arriveAt"`
	OffsetSeconds   int       `json:"offsetSeconds"`
	DistanceMeters  int       `json:"distanceMeters"`
	DurationSeconds int       `json:"durationSeconds"`
}

type EstimateResponse struct {
	RouteID              string                 `json:"routeId"`
	DepartAt             time.Time              `json:"departAt"`
	TotalDistanceMeters  int                    `json:"totalDistanceMeters"`
	TotalDurationSeconds int                    `json:"totalDurationSeconds"`
	Optimized            bool                   `json:"optimized"`
	ReturnToStart        bool                   `json:"returnToStart"`
	EstimatedTime        string                 `json:"estimatedTime"`
	Applied              bool                   `json:"applied"`
	Stops                []EstimateStopResponse `json:"stops"`
}

func Estimate(e *domain.RouteEstimate) EstimateResponse {
	res := EstimateResponse{
		RouteID:              e.RouteID,
		DepartAt:             e.DepartAt,
		TotalDistanceMeters:  e.TotalDistanceMeters,
		TotalDurationSeconds: e.TotalDurationSeconds,
		Optimized:            e.Optimized,
		ReturnToStart:        e.ReturnToStart,
		EstimatedTime:        e.EstimatedTime,
		Applied:              e.Applied,
		Stops:                make([]EstimateStopResponse, 0, len(e.Stops)),
	}
	for _, s := range e.Stops {
		res.Stops = append(res.Stops, EstimateStopResponse{
			Address:         s.Address,
			ArriveAt:        s.ArriveAt,
			OffsetSeconds:   s.OffsetSeconds,
			DistanceMeters:  s.DistanceMeters,
			DurationSeconds: s.DurationSeconds,
		})
	}
	return res
}
