package commands

import (
	"context"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/domain/venue"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/infra"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrNotVenueOwner     = errs.New("venue belongs to another owner")
	ErrVenueNotPending   = errs.New("venue is not pending review")
	ErrInvalidVenueInput = errs.New("invalid venue input")
	ErrBlockoutNotFound  = errs.New("blockout not found")
)

type VenueCommands interface {
	RegisterVenue(ctx context.Context, req reqdto.RegisterVenueRequest, ownerID uuid.UUID) (*queries.VenueView, error)
	UpdateSchedule(ctx context.Context, venueID, ownerID uuid.UUID, req reqdto.UpdateScheduleRequest) error
	AddBlockout(ctx context.Context, venueID, ownerID uuid.UUID, req reqdto.AddBlockoutRequest) (uuid.UUID, error)
	RemoveBlockout(ctx context.Context, venueID, ownerID, blockoutID uuid.UUID) error
	ApproveVenue(ctx context.Context, venueID uuid.UUID) error
	RejectVenue(ctx context.Context, venueID uuid.UUID) error
}

type venueCommandsImpl struct {
	venueRepo    VenueRepository
	blockoutRepo BlockoutRepository
	venueQueries queries.VenueQueries
	clock        clock.Clock
}

func NewVenueCommands(
	venueRepo VenueRepository,
	blockoutRepo BlockoutRepository,
	venueQueries queries.VenueQueries,
	clk clock.Clock,
) VenueCommands {
	return &venueCommandsImpl{
		venueRepo:    venueRepo,
		blockoutRepo: blockoutRepo,
		venueQueries: venueQueries,
		clock:        clk,
	}
}

func (v *venueCommandsImpl) RegisterVenue(ctx context.Context, req reqdto.RegisterVenueRequest, ownerID uuid.UUID) (*queries.VenueView, error) {
	weekly, err := reqdto.ToWeeklySchedule(req.Weekly)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVenueInput)
	}

	entity, err := venue.NewVenue(
		ownerID,
		req.Name, req.Description, req.City,
		venue.SportKind(req.Sport),
		req.Capacity,
		booking.RateCard{
			Hourly: booking.NewMoney(req.HourlyRatePaise),
			Daily:  booking.NewMoney(req.DailyRatePaise),
		},
		weekly,
		v.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVenueInput)
	}

	venueID, err := v.venueRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return v.venueQueries.GetByID(ctx, venueID)
}

func (v *venueCommandsImpl) UpdateSchedule(ctx context.Context, venueID, ownerID uuid.UUID, req reqdto.UpdateScheduleRequest) error {
	if _, err := v.loadOwnedVenue(ctx, venueID, ownerID); err != nil {
		return err
	}

	weekly, err := reqdto.ToWeeklySchedule(req.Weekly)
	if err != nil {
		return errs.Mark(err, ErrInvalidVenueInput)
	}

	if err := v.venueRepo.ReplaceWeeklySchedule(ctx, venueID, weekly); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (v *venueCommandsImpl) AddBlockout(ctx context.Context, venueID, ownerID uuid.UUID, req reqdto.AddBlockoutRequest) (uuid.UUID, error) {
	if _, err := v.loadOwnedVenue(ctx, venueID, ownerID); err != nil {
		return uuid.Nil, err
	}

	blockout, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidVenueInput)
	}

	id, err := v.blockoutRepo.Add(ctx, venueID, blockout)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (v *venueCommandsImpl) RemoveBlockout(ctx context.Context, venueID, ownerID, blockoutID uuid.UUID) error {
	if _, err := v.loadOwnedVenue(ctx, venueID, ownerID); err != nil {
		return err
	}

	if err := v.blockoutRepo.Remove(ctx, venueID, blockoutID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockoutNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (v *venueCommandsImpl) ApproveVenue(ctx context.Context, venueID uuid.UUID) error {
	return v.review(ctx, venueID, (*venue.Venue).Approve)
}

func (v *venueCommandsImpl) RejectVenue(ctx context.Context, venueID uuid.UUID) error {
	return v.review(ctx, venueID, (*venue.Venue).Reject)
}

func (v *venueCommandsImpl) review(ctx context.Context, venueID uuid.UUID, decide func(*venue.Venue, time.Time) error) error {
	snapshot, err := v.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := snapshot.ToEntity()
	if err := decide(entity, v.clock.Now()); err != nil {
		return errs.Mark(err, ErrVenueNotPending)
	}

	if err := v.venueRepo.UpdateStatus(ctx, venueID, entity.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (v *venueCommandsImpl) loadOwnedVenue(ctx context.Context, venueID, ownerID uuid.UUID) (*VenueSnapshot, error) {
	snapshot, err := v.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.OwnerID != ownerID {
		return nil, ErrNotVenueOwner
	}
	return snapshot, nil
}
