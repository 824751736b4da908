package components

import (
	"carreserve/internal/handler"
	"carreserve/internal/handler/api"
	"carreserve/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCarHandler,
		api.NewReservationHandler,
		api.NewTimelineHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
