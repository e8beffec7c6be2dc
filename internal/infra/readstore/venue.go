package readstore

import (
	"context"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueReadStore struct {
	db *pgxpool.Pool
}

func NewVenueReadStore(db *pgxpool.Pool) *VenueReadStore {
	return &VenueReadStore{db: db}
}

const venueViewSQL = `
SELECT id, owner_id, name, description, city, sport, capacity,
       hourly_rate_paise, daily_rate_paise, status, weekly_schedule,
       created_at, updated_at
FROM venues
WHERE id = $1`

func (s *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	var (
		view       queries.VenueView
		weeklyJSON []byte
	)
	err := s.db.QueryRow(ctx, venueViewSQL, id).Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Description,
		&view.City, &view.Sport, &view.Capacity,
		&view.HourlyRatePaise, &view.DailyRatePaise,
		&view.Status, &weeklyJSON,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue", err)
	}

	weekly, err := converter.WeeklyViewFromJSON(weeklyJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode weekly schedule", err)
	}
	view.Weekly = weekly
	return &view, nil
}

const listApprovedSQL = `
SELECT id, name, city, sport, capacity, hourly_rate_paise, daily_rate_paise
FROM venues
WHERE status = 'approved' AND ($1 = '' OR city = $1)
ORDER BY name`

func (s *VenueReadStore) ListApproved(ctx context.Context, city string) ([]*queries.VenueListItem, error) {
	rows, err := s.db.Query(ctx, listApprovedSQL, city)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved venues", err)
	}
	return scanVenueItems(rows)
}

const listPendingSQL = `
SELECT id, name, city, sport, capacity, hourly_rate_paise, daily_rate_paise
FROM venues
WHERE status = 'pending'
ORDER BY created_at`

func (s *VenueReadStore) ListPending(ctx context.Context) ([]*queries.VenueListItem, error) {
	rows, err := s.db.Query(ctx, listPendingSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending venues", err)
	}
	return scanVenueItems(rows)
}

func scanVenueItems(rows pgx.Rows) ([]*queries.VenueListItem, error) {
	defer rows.Close()

	items := make([]*queries.VenueListItem, 0)
	for rows.Next() {
		var item queries.VenueListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.City, &item.Sport,
			&item.Capacity, &item.HourlyRatePaise, &item.DailyRatePaise,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read venues", err)
	}
	return items, nil
}

const listAllBlockoutsSQL = `
SELECT id, start_date, end_date, start_minutes, end_minutes, reason, kind
FROM blockouts
WHERE venue_id = $1
ORDER BY start_date, start_minutes NULLS FIRST`

func (s *VenueReadStore) ListBlockouts(ctx context.Context, venueID uuid.UUID) ([]*queries.BlockoutView, error) {
	rows, err := s.db.Query(ctx, listAllBlockoutsSQL, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blockouts", err)
	}
	defer rows.Close()

	views := make([]*queries.BlockoutView, 0)
	for rows.Next() {
		var (
			view         queries.BlockoutView
			startDate    time.Time
			endDate      time.Time
			startMinutes *int
			endMinutes   *int
		)
		if err := rows.Scan(&view.ID, &startDate, &endDate, &startMinutes, &endMinutes, &view.Reason, &view.Kind); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blockout", err)
		}
		view.StartDate = startDate.Format("2006-01-02")
		view.EndDate = endDate.Format("2006-01-02")
		view.StartTime = minutesToClock(startMinutes)
		view.EndTime = minutesToClock(endMinutes)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blockouts", err)
	}
	return views, nil
}

func minutesToClock(minutes *int) *string {
	if minutes == nil {
		return nil
	}
	s := schedule.TimeOfDay(*minutes).String()
	return &s
}
