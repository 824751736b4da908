package usecase

import (
	"context"
	"errors"
	"time"

	"carreserve/internal/domain/car"
	"carreserve/internal/domain/reservation"
	"carreserve/internal/domain/user"
	"carreserve/internal/infra"
	"carreserve/internal/pkg/clock"
	"carreserve/internal/pkg/errs"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCarNotFound         = errors.New("car not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationConflict = errors.New("time slot conflict")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrInvalidCarID        = errors.New("invalid car identifier")
	ErrNotReservationOwner = errors.New("not the reservation owner")
	ErrCannotCancel        = errors.New("reservation cannot be cancelled")
	ErrForbidden           = errors.New("access denied")

	// Error markers for categorization
	ErrMalformedRecord         = errors.New("malformed record from store")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error)
	FindSlotsByCar(ctx context.Context, carID uuid.UUID, from, until time.Time) ([]*queries.ReservationSlotRow, error)
	FindTimelineRows(ctx context.Context, from, until time.Time) ([]*queries.TimelineRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	CountByStatuses(ctx context.Context, statuses []string) (int64, error)
}

type CarRepository interface {
	List(ctx context.Context) ([]*queries.CarView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error)
	Create(ctx context.Context, c *car.Car) (*queries.CarView, error)
	Count(ctx context.Context) (int64, error)
}

type CreateReservationInput struct {
	CarID     string
	Date      time.Time
	StartTime string
	EndTime   string
	Purpose   string
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, input CreateReservationInput, userID uuid.UUID) (*queries.ReservationView, error)
	GetReservation(ctx context.Context, id, viewerID uuid.UUID, viewerRole user.Role) (*queries.ReservationView, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id, viewerID uuid.UUID) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	carRepo         CarRepository
	policy          reservation.BlockingPolicy
	location        *time.Location
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	carRepo CarRepository,
	policy reservation.BlockingPolicy,
	location *time.Location,
	clock clock.Clock,
) ReservationUseCase {
	if location == nil {
		location = time.UTC
	}
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		policy:          policy,
		location:        location,
		clock:           clock,
	}
}

// CreateReservation runs the pre-flight availability check and inserts on
// success. The check and the insert are two separate store round trips, so a
// concurrent request can win the slot in between; the exclusion constraint
// reports that as a conflict and both paths surface ErrReservationConflict.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	input CreateReservationInput,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	req, slot, err := r.parseInput(input)
	if err != nil {
		return nil, err
	}

	carID, err := uuid.Parse(input.CarID)
	if err != nil {
		return nil, ErrInvalidCarID
	}
	if _, err := r.carRepo.FindByID(ctx, carID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	existing, err := r.fetchBookedSlots(ctx, carID, slot)
	if err != nil {
		return nil, err
	}

	normalized, err := reservation.ValidateAndNormalize(req, existing, r.policy, r.location)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrSlotConflict):
			return nil, ErrReservationConflict
		case errors.Is(err, reservation.ErrInvalidCarID):
			return nil, ErrInvalidCarID
		default:
			return nil, errs.Mark(err, ErrInvalidTimeSlot)
		}
	}

	entity := reservation.NewReservation(normalized.CarID, userID, normalized.Slot, reservation.NewPurpose(input.Purpose))

	view, err := r.reservationRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.decorateCanCancel(view, userID)
	return view, nil
}

func (r *reservationUseCaseImpl) parseInput(input CreateReservationInput) (reservation.SlotRequest, reservation.TimeSlot, error) {
	start, err := reservation.ParseTimeOfDay(input.StartTime)
	if err != nil {
		return reservation.SlotRequest{}, reservation.TimeSlot{}, errs.Mark(err, ErrInvalidTimeSlot)
	}
	end, err := reservation.ParseTimeOfDay(input.EndTime)
	if err != nil {
		return reservation.SlotRequest{}, reservation.TimeSlot{}, errs.Mark(err, ErrInvalidTimeSlot)
	}

	slot, err := reservation.NewTimeSlotFromParts(input.Date, start, end, r.location)
	if err != nil {
		return reservation.SlotRequest{}, reservation.TimeSlot{}, errs.Mark(err, ErrInvalidTimeSlot)
	}

	req := reservation.SlotRequest{
		CarID: input.CarID,
		Date:  input.Date,
		Start: start,
		End:   end,
	}
	return req, slot, nil
}

func (r *reservationUseCaseImpl) fetchBookedSlots(ctx context.Context, carID uuid.UUID, slot reservation.TimeSlot) ([]reservation.Booked, error) {
	rows, err := r.reservationRepo.FindSlotsByCar(ctx, carID, slot.Start(), slot.End())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	booked := make([]reservation.Booked, 0, len(rows))
	for _, row := range rows {
		b, err := toBooked(row)
		if err != nil {
			return nil, err
		}
		booked = append(booked, b)
	}
	return booked, nil
}

// toBooked parses a store row into the typed domain projection. Malformed
// rows are rejected here rather than trusted downstream.
func toBooked(row *queries.ReservationSlotRow) (reservation.Booked, error) {
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return reservation.Booked{}, errs.Mark(err, ErrMalformedRecord)
	}
	slot, err := reservation.NewTimeSlot(row.StartTime, row.EndTime)
	if err != nil {
		return reservation.Booked{}, errs.Mark(err, ErrMalformedRecord)
	}
	return reservation.Booked{
		ID:     row.ID,
		CarID:  row.CarID,
		Slot:   slot,
		Status: status,
	}, nil
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id, viewerID uuid.UUID, viewerRole user.Role) (*queries.ReservationView, error) {
	view, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	if view.UserID != viewerID && viewerRole != user.RoleAdmin {
		return nil, ErrForbidden
	}

	r.decorateCanCancel(view, viewerID)
	return view, nil
}

func (r *reservationUseCaseImpl) GetUserReservations(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	views, err := r.reservationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user reservations")
	}

	for _, view := range views {
		r.decorateCanCancel(view, userID)
	}
	return views, nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, id, viewerID uuid.UUID) (*queries.ReservationView, error) {
	view, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	entity, err := toEntity(view)
	if err != nil {
		return nil, err
	}

	if err := entity.CancelBy(viewerID, r.clock.Now()); err != nil {
		switch {
		case errors.Is(err, reservation.ErrNotOwner):
			return nil, ErrNotReservationOwner
		default:
			return nil, errs.Mark(err, ErrCannotCancel)
		}
	}

	if err := r.reservationRepo.UpdateStatus(ctx, entity.ID(), entity.Status()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view.Status = entity.Status().String()
	view.CanCancel = false
	return view, nil
}

func toEntity(view *queries.ReservationView) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(view.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedRecord)
	}
	slot, err := reservation.NewTimeSlot(view.StartTime, view.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedRecord)
	}

	return reservation.ReconstructReservation(
		view.ID,
		view.CarID,
		view.UserID,
		slot,
		reservation.NewPurpose(view.Purpose),
		status,
		view.CreatedAt,
		view.UpdatedAt,
	), nil
}

func (r *reservationUseCaseImpl) decorateCanCancel(view *queries.ReservationView, viewerID uuid.UUID) {
	entity, err := toEntity(view)
	if err != nil {
		view.CanCancel = false
		return
	}
	view.CanCancel = entity.CancellableBy(viewerID, r.clock.Now())
}
