package components

import (
	"time"

	"carreserve/internal/domain/reservation"
	"carreserve/internal/pkg/clock"
	"carreserve/internal/pkg/config"
	"carreserve/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewCarUseCase,
		usecase.NewReservationUseCase,
		usecase.NewTimelineUseCase,
		usecase.NewTokenValidator,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBlockingPolicy,
	NewLocation,
	func(cfg config.Config) config.TimelineConfig {
		return cfg.Timeline
	},
	func(cfg config.Config) config.CookieConfig {
		return cfg.Cookie
	},
)

func NewBlockingPolicy(cfg config.Config) (reservation.BlockingPolicy, error) {
	return reservation.NewBlockingPolicy(cfg.Reservation.BlockingStatuses)
}

func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Reservation.TimeZone)
}
