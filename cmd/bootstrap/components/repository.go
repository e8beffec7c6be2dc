package components

import (
	"venuebook/internal/infra/readstore"
	repo_impl "venuebook/internal/infra/repository"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewVenueRepository,
			fx.As(new(commands.VenueRepository)),
		),
		fx.Annotate(
			repo_impl.NewBlockoutRepository,
			fx.As(new(commands.BlockoutRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewVenueReadStore,
			fx.As(new(queries.VenueReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)
