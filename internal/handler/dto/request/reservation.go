package request

import (
	"errors"
	"strings"
	"time"

	"carreserve/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")

// CreateReservationRequest mirrors the reservation form: a calendar date plus
// start/end times of day, not raw instants.
type CreateReservationRequest struct {
	CarID     string `json:"carId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Purpose   string `json:"purpose" binding:"required"`
}

func (r CreateReservationRequest) ToInput(loc *time.Location) (usecase.CreateReservationInput, error) {
	if loc == nil {
		loc = time.UTC
	}

	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(r.Date), loc)
	if err != nil {
		return usecase.CreateReservationInput{}, ErrInvalidDate
	}

	return usecase.CreateReservationInput{
		CarID:     strings.TrimSpace(r.CarID),
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   strings.TrimSpace(r.Purpose),
	}, nil
}
