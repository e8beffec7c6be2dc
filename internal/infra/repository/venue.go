package repository

import (
	"context"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueRepository struct {
	db *pgxpool.Pool
}

func NewVenueRepository(db *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{db: db}
}

const createVenueSQL = `
INSERT INTO venues (
	id, owner_id, name, description, city, sport, capacity,
	hourly_rate_paise, daily_rate_paise, status, weekly_schedule,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *VenueRepository) Create(ctx context.Context, v *venue.Venue) (uuid.UUID, error) {
	weeklyJSON, err := converter.WeeklyToJSON(v.Weekly())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode weekly schedule", err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, createVenueSQL,
		v.ID(), v.OwnerID(), v.Name(), v.Description(), v.City(),
		string(v.Sport()), v.Capacity(),
		v.Rates().Hourly.Paise(), v.Rates().Daily.Paise(),
		string(v.Status()), weeklyJSON,
		v.CreatedAt(), v.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create venue", err)
	}
	return id, nil
}

const findVenueSQL = `
SELECT id, owner_id, name, description, city, sport, capacity,
       hourly_rate_paise, daily_rate_paise, status, weekly_schedule,
       created_at, updated_at
FROM venues
WHERE id = $1`

func (r *VenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.VenueSnapshot, error) {
	var (
		snapshot   commands.VenueSnapshot
		sport      string
		status     string
		weeklyJSON []byte
	)
	err := r.db.QueryRow(ctx, findVenueSQL, id).Scan(
		&snapshot.ID, &snapshot.OwnerID, &snapshot.Name, &snapshot.Description,
		&snapshot.City, &sport, &snapshot.Capacity,
		&snapshot.HourlyRatePaise, &snapshot.DailyRatePaise,
		&status, &weeklyJSON,
		&snapshot.CreatedAt, &snapshot.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to find venue", err)
	}

	weekly, err := converter.WeeklyFromJSON(weeklyJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode weekly schedule", err)
	}

	snapshot.Sport = venue.SportKind(sport)
	snapshot.Status = venue.Status(status)
	snapshot.Weekly = weekly
	return &snapshot, nil
}

const updateVenueStatusSQL = `
UPDATE venues SET status = $2, updated_at = now() WHERE id = $1`

func (r *VenueRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status venue.Status) error {
	tag, err := r.db.Exec(ctx, updateVenueStatusSQL, id, string(status))
	if err != nil {
		return wrapPgErr("failed to update venue status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

const replaceScheduleSQL = `
UPDATE venues SET weekly_schedule = $2, updated_at = now() WHERE id = $1`

func (r *VenueRepository) ReplaceWeeklySchedule(ctx context.Context, id uuid.UUID, ws schedule.WeeklySchedule) error {
	weeklyJSON, err := converter.WeeklyToJSON(ws)
	if err != nil {
		return infra.WrapRepoErr("failed to encode weekly schedule", err)
	}

	tag, err := r.db.Exec(ctx, replaceScheduleSQL, id, weeklyJSON)
	if err != nil {
		return wrapPgErr("failed to replace weekly schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
