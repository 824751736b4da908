package response

import (
	"time"

	"carreserve/internal/domain/timeline"
	"carreserve/internal/usecase"
)

type TimelineResponse struct {
	Entries []timeline.Entry    `json:"entries"`
	Days    []time.Time         `json:"days"`
	Hours   []timeline.HourTick `json:"hours"`
}

func FromTimelineResult(result *usecase.TimelineResult) *TimelineResponse {
	return &TimelineResponse{
		Entries: result.Entries,
		Days:    result.Days,
		Hours:   result.Hours,
	}
}
