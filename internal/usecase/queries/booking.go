package queries

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrNotBookingOwner = errs.New("booking belongs to another user")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	// GetByID enforces that the actor owns the booking.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// ListByVenue enforces that the actor owns the venue.
	ListByVenue(ctx context.Context, actor uuid.UUID, venueID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	venues VenueReadStore
}

func NewBookingQueries(store BookingReadStore, venues VenueReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, venues: venues}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		return nil, ErrNotBookingOwner
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListByVenue(ctx context.Context, actor uuid.UUID, venueID uuid.UUID) ([]*BookingListItem, error) {
	if err := requireVenueOwner(ctx, q.venues, actor, venueID); err != nil {
		return nil, err
	}
	return q.store.ListByVenue(ctx, venueID)
}
