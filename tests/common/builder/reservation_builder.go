//go:build unit || e2e

package builder

import (
	"time"

	"carreserve/internal/domain/reservation"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationBuilder produces the various shapes a reservation takes across
// the layers: a slot request coming in, a booked projection already in the
// store, and the read model going out.
type ReservationBuilder struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Purpose   string
	Status    string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		CarID:     uuid.New(),
		UserID:    uuid.New(),
		Date:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Purpose:   "grocery run",
		Status:    "pending",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithTimes(start, end string) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithCar(carID uuid.UUID) *ReservationBuilder {
	b.CarID = carID
	return b
}

func (b *ReservationBuilder) BuildSlotRequest() (reservation.SlotRequest, error) {
	start, err := reservation.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return reservation.SlotRequest{}, err
	}
	end, err := reservation.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return reservation.SlotRequest{}, err
	}

	return reservation.SlotRequest{
		CarID: b.CarID.String(),
		Date:  b.Date,
		Start: start,
		End:   end,
	}, nil
}

func (b *ReservationBuilder) BuildBooked() (reservation.Booked, error) {
	slot, err := b.buildSlot()
	if err != nil {
		return reservation.Booked{}, err
	}
	status, err := reservation.NewStatus(b.Status)
	if err != nil {
		return reservation.Booked{}, err
	}

	return reservation.Booked{
		ID:     b.ID,
		CarID:  b.CarID,
		Slot:   slot,
		Status: status,
	}, nil
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := b.buildSlot()
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.CarID, b.UserID, slot, reservation.NewPurpose(b.Purpose)), nil
}

func (b *ReservationBuilder) BuildView() (*queries.ReservationView, error) {
	slot, err := b.buildSlot()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	return &queries.ReservationView{
		ID:        b.ID,
		CarID:     b.CarID,
		CarMake:   "Toyota",
		CarModel:  "Sienna",
		CarPlate:  "FAM-0001",
		UserID:    b.UserID,
		UserEmail: "member@example.com",
		StartTime: slot.Start(),
		EndTime:   slot.End(),
		Purpose:   b.Purpose,
		Status:    b.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (b *ReservationBuilder) BuildSlotRow() (*queries.ReservationSlotRow, error) {
	slot, err := b.buildSlot()
	if err != nil {
		return nil, err
	}

	return &queries.ReservationSlotRow{
		ID:        b.ID,
		CarID:     b.CarID,
		StartTime: slot.Start(),
		EndTime:   slot.End(),
		Status:    b.Status,
	}, nil
}

func (b *ReservationBuilder) buildSlot() (reservation.TimeSlot, error) {
	start, err := reservation.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	end, err := reservation.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	return reservation.NewTimeSlotFromParts(b.Date, start, end, time.UTC)
}
