package components

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) schedule.Generator {
		return schedule.NewGenerator(cfg.Booking.SlotWidthMinutes)
	},
	func(cfg config.Config, clk clock.Clock) *booking.Factory {
		return booking.NewFactory(clk, booking.NewMoney(cfg.Booking.PlatformFeePaise))
	},
	NewVenueLocation,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVenueCommands,
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVenueQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewVenueLocation resolves the timezone all venue-local dates are anchored to.
func NewVenueLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.VenueTimeZone)
}

func NewBookingCommands(
	cfg config.Config,
	venueRepo commands.VenueRepository,
	blockoutRepo commands.BlockoutRepository,
	bookingRepo commands.BookingRepository,
	gateway commands.PaymentGateway,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	generator schedule.Generator,
	venueLocation *time.Location,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		venueRepo,
		blockoutRepo,
		bookingRepo,
		gateway,
		bookingQueries,
		factory,
		generator,
		cfg.Booking.Currency,
		venueLocation,
	)
}
