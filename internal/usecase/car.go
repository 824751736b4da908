package usecase

import (
	"context"
	"errors"

	"carreserve/internal/domain/car"
	"carreserve/internal/domain/reservation"
	"carreserve/internal/infra"
	"carreserve/internal/pkg/errs"
	"carreserve/internal/usecase/queries"
)

var (
	ErrInvalidCarData = errors.New("invalid car data")
	ErrDuplicatePlate = errors.New("plate number already registered")
)

type CreateCarInput struct {
	Make        string
	Model       string
	Year        int
	PlateNumber string
}

type CarUseCase interface {
	ListCars(ctx context.Context) ([]*queries.CarView, error)
	CreateCar(ctx context.Context, input CreateCarInput) (*queries.CarView, error)
	GetDashboardStats(ctx context.Context) (*queries.DashboardStats, error)
}

type carUseCaseImpl struct {
	carRepo         CarRepository
	reservationRepo ReservationRepository
}

func NewCarUseCase(carRepo CarRepository, reservationRepo ReservationRepository) CarUseCase {
	return &carUseCaseImpl{
		carRepo:         carRepo,
		reservationRepo: reservationRepo,
	}
}

func (c *carUseCaseImpl) ListCars(ctx context.Context) ([]*queries.CarView, error) {
	cars, err := c.carRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list cars")
	}
	return cars, nil
}

// CreateCar registers a fleet car. Admin-only; the router enforces the role.
func (c *carUseCaseImpl) CreateCar(ctx context.Context, input CreateCarInput) (*queries.CarView, error) {
	newCar, err := car.NewCar(input.Make, input.Model, input.Year, input.PlateNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCarData)
	}

	view, err := c.carRepo.Create(ctx, newCar)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicatePlate
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

// GetDashboardStats counts the fleet and the reservations still in play
// (pending or approved), mirroring the dashboard cards.
func (c *carUseCaseImpl) GetDashboardStats(ctx context.Context) (*queries.DashboardStats, error) {
	carCount, err := c.carRepo.Count(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count cars")
	}

	active, err := c.reservationRepo.CountByStatuses(ctx, []string{
		reservation.StatusPending.String(),
		reservation.StatusApproved.String(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to count active reservations")
	}

	return &queries.DashboardStats{
		CarCount:           carCount,
		ActiveReservations: active,
	}, nil
}
