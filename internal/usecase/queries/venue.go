package queries

import (
	"context"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotVenueOwner = errs.New("venue belongs to another owner")

type VenueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListApproved(ctx context.Context, city string) ([]*VenueListItem, error)
	ListPending(ctx context.Context) ([]*VenueListItem, error)
	ListBlockouts(ctx context.Context, venueID uuid.UUID) ([]*BlockoutView, error)
}

type VenueQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListApproved(ctx context.Context, city string) ([]*VenueListItem, error)
	ListPending(ctx context.Context) ([]*VenueListItem, error)
	// ListBlockouts enforces that the actor owns the venue.
	ListBlockouts(ctx context.Context, actor uuid.UUID, venueID uuid.UUID) ([]*BlockoutView, error)
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Wrap(err, "failed to find venue")
	}
	return view, nil
}

func (q *venueQueriesImpl) ListApproved(ctx context.Context, city string) ([]*VenueListItem, error) {
	return q.store.ListApproved(ctx, city)
}

func (q *venueQueriesImpl) ListPending(ctx context.Context) ([]*VenueListItem, error) {
	return q.store.ListPending(ctx)
}

func (q *venueQueriesImpl) ListBlockouts(ctx context.Context, actor uuid.UUID, venueID uuid.UUID) ([]*BlockoutView, error) {
	if err := requireVenueOwner(ctx, q.store, actor, venueID); err != nil {
		return nil, err
	}
	return q.store.ListBlockouts(ctx, venueID)
}

// requireVenueOwner resolves the venue through the read store and rejects
// actors other than its owner. Shared by the venue- and booking-side queries.
func requireVenueOwner(ctx context.Context, store VenueReadStore, actor, venueID uuid.UUID) error {
	view, err := store.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrVenueNotFound
		}
		return errs.Wrap(err, "failed to find venue")
	}
	if view.OwnerID != actor {
		return ErrNotVenueOwner
	}
	return nil
}
