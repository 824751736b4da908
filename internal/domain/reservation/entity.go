package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrNotCancellable   = errors.New("reservation can no longer be cancelled")
	ErrNotOwner         = errors.New("reservation belongs to another user")
)

type Reservation struct {
	id        uuid.UUID
	carID     uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot
	purpose   Purpose
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation creates a pending reservation. Availability must have been
// checked by the caller; the database exclusion constraint is the final word.
func NewReservation(carID, userID uuid.UUID, slot TimeSlot, purpose Purpose) *Reservation {
	return &Reservation{
		id:      uuid.New(),
		carID:   carID,
		userID:  userID,
		slot:    slot,
		purpose: purpose,
		status:  StatusPending,
	}
}

func ReconstructReservation(
	id, carID, userID uuid.UUID,
	slot TimeSlot,
	purpose Purpose,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		carID:     carID,
		userID:    userID,
		slot:      slot,
		purpose:   purpose,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) CarID() uuid.UUID     { return r.carID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) Purpose() Purpose     { return r.purpose }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// CancellableBy reports whether viewer may cancel this reservation: the owner
// only, while the reservation is still pending or approved and has not ended.
func (r *Reservation) CancellableBy(viewer uuid.UUID, now time.Time) bool {
	if viewer != r.userID {
		return false
	}
	if r.status != StatusPending && r.status != StatusApproved {
		return false
	}
	return now.Before(r.slot.End())
}

// CancelBy marks the reservation cancelled. Rows are never deleted.
func (r *Reservation) CancelBy(viewer uuid.UUID, now time.Time) error {
	if viewer != r.userID {
		return ErrNotOwner
	}
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !r.CancellableBy(viewer, now) {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}
