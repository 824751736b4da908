package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCarID = errors.New("invalid car identifier")
	ErrSlotConflict = errors.New("time slot already booked")
)

// SlotRequest is a proposed reservation as it arrives from the form:
// a calendar date plus start/end times of day against one car.
type SlotRequest struct {
	CarID string
	Date  time.Time
	Start TimeOfDay
	End   TimeOfDay
}

// NormalizedSlot is the validated result the caller persists.
type NormalizedSlot struct {
	CarID uuid.UUID
	Slot  TimeSlot
}

// Booked is the minimal projection of an existing reservation the
// availability check needs. The caller fetches these; this package does no I/O.
type Booked struct {
	ID     uuid.UUID
	CarID  uuid.UUID
	Slot   TimeSlot
	Status Status
}

// ValidateAndNormalize combines the request date and times of day into start
// and end instants, validates the car id, and checks the proposed slot against
// the existing reservations for that car. A successful result is advisory
// only: two concurrent requests can both pass, and the database exclusion
// constraint settles the race on insert.
func ValidateAndNormalize(
	req SlotRequest,
	existing []Booked,
	policy BlockingPolicy,
	loc *time.Location,
) (NormalizedSlot, error) {
	carID, err := uuid.Parse(req.CarID)
	if err != nil || carID == uuid.Nil {
		return NormalizedSlot{}, ErrInvalidCarID
	}

	slot, err := NewTimeSlotFromParts(req.Date, req.Start, req.End, loc)
	if err != nil {
		return NormalizedSlot{}, err
	}

	if _, found := FindConflict(carID, slot, existing, policy); found {
		return NormalizedSlot{}, ErrSlotConflict
	}

	return NormalizedSlot{CarID: carID, Slot: slot}, nil
}

// FindConflict returns the first existing reservation on the same car whose
// status blocks under the policy and whose interval overlaps the proposed
// slot. Half-open intervals: back-to-back bookings touching at the boundary
// never conflict.
func FindConflict(carID uuid.UUID, slot TimeSlot, existing []Booked, policy BlockingPolicy) (Booked, bool) {
	for _, b := range existing {
		if b.CarID != carID {
			continue
		}
		if !policy.Blocks(b.Status) {
			continue
		}
		if slot.Overlaps(b.Slot) {
			return b, true
		}
	}
	return Booked{}, false
}
