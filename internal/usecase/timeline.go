package usecase

import (
	"context"
	"time"

	"carreserve/internal/domain/timeline"
	"carreserve/internal/pkg/clock"
	"carreserve/internal/pkg/config"
	"carreserve/internal/pkg/errs"
)

type TimelineResult struct {
	Entries []timeline.Entry    `json:"entries"`
	Days    []time.Time         `json:"days"`
	Hours   []timeline.HourTick `json:"hours"`
}

type TimelineUseCase interface {
	GetTimeline(ctx context.Context, days int) (*TimelineResult, error)
}

type timelineUseCaseImpl struct {
	reservationRepo ReservationRepository
	cfg             config.TimelineConfig
	location        *time.Location
	clock           clock.Clock
}

func NewTimelineUseCase(
	reservationRepo ReservationRepository,
	cfg config.TimelineConfig,
	location *time.Location,
	clock clock.Clock,
) TimelineUseCase {
	if location == nil {
		location = time.UTC
	}
	return &timelineUseCaseImpl{
		reservationRepo: reservationRepo,
		cfg:             cfg,
		location:        location,
		clock:           clock,
	}
}

// GetTimeline fetches every reservation starting inside the visible window
// and hands the flat rows to the pure layout transform.
func (t *timelineUseCaseImpl) GetTimeline(ctx context.Context, days int) (*TimelineResult, error) {
	if days <= 0 {
		days = t.cfg.Days
	}

	window := timeline.NewWindow(
		t.clock.Now().In(t.location),
		days,
		t.cfg.StartHour,
		t.cfg.EndHour,
		t.cfg.LaneWidth,
	)

	rows, err := t.reservationRepo.FindTimelineRows(ctx, window.From, window.Until())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookings := make([]timeline.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = timeline.Booking{
			ID:         row.ID,
			Start:      row.StartTime.In(t.location),
			End:        row.EndTime.In(t.location),
			CarMake:    row.CarMake,
			CarModel:   row.CarModel,
			OwnerLabel: row.UserEmail,
		}
	}

	return &TimelineResult{
		Entries: timeline.Layout(bookings, window),
		Days:    window.DayTicks(),
		Hours:   window.HourTicks(),
	}, nil
}
