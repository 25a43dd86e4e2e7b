package components

import (
	"glamping-api/internal/handler"
	"glamping-api/internal/handler/api"
	"glamping-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	availability *api.AvailabilityHandler,
	catalog *api.CatalogHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Reservation:  reservation,
		Availability: availability,
		Catalog:      catalog,
	}
}
