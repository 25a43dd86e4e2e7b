package bootstrap

import (
	"time"

	"glamping-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		NewBookingLocation,
	),
)

// NewBookingLocation is the calendar "today" is computed in.
func NewBookingLocation(cfg config.BookingConfig) (*time.Location, error) {
	return cfg.Location()
}
