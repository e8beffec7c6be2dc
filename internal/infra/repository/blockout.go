package repository

import (
	"context"
	"time"

	"venuebook/internal/domain/schedule"
	"venuebook/internal/infra"
	"venuebook/internal/infra/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BlockoutRepository struct {
	db *pgxpool.Pool
}

func NewBlockoutRepository(db *pgxpool.Pool) *BlockoutRepository {
	return &BlockoutRepository{db: db}
}

const addBlockoutSQL = `
INSERT INTO blockouts (
	id, venue_id, start_date, end_date, start_minutes, end_minutes, reason, kind, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
RETURNING id`

func (r *BlockoutRepository) Add(ctx context.Context, venueID uuid.UUID, b schedule.Blockout) (uuid.UUID, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var inserted uuid.UUID
	err := r.db.QueryRow(ctx, addBlockoutSQL,
		id, venueID, b.StartDate, b.EndDate,
		converter.MinutesPtr(b.Start), converter.MinutesPtr(b.End),
		b.Reason, string(b.Kind),
	).Scan(&inserted)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to add blockout", err)
	}
	return inserted, nil
}

const removeBlockoutSQL = `
DELETE FROM blockouts WHERE id = $1 AND venue_id = $2`

func (r *BlockoutRepository) Remove(ctx context.Context, venueID, blockoutID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, removeBlockoutSQL, blockoutID, venueID)
	if err != nil {
		return wrapPgErr("failed to remove blockout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blockout not found", nil, infra.KindNotFound)
	}
	return nil
}

const listBlockoutsOnSQL = `
SELECT id, start_date, end_date, start_minutes, end_minutes, reason, kind
FROM blockouts
WHERE venue_id = $1 AND start_date <= $2 AND end_date >= $2
ORDER BY start_date, start_minutes NULLS FIRST`

func (r *BlockoutRepository) ListOn(ctx context.Context, venueID uuid.UUID, date time.Time) ([]schedule.Blockout, error) {
	rows, err := r.db.Query(ctx, listBlockoutsOnSQL, venueID, date)
	if err != nil {
		return nil, wrapPgErr("failed to list blockouts", err)
	}
	defer rows.Close()

	var blockouts []schedule.Blockout
	for rows.Next() {
		var (
			b            schedule.Blockout
			kind         string
			startMinutes *int
			endMinutes   *int
		)
		if err := rows.Scan(&b.ID, &b.StartDate, &b.EndDate, &startMinutes, &endMinutes, &b.Reason, &kind); err != nil {
			return nil, wrapPgErr("failed to scan blockout", err)
		}
		b.Start = converter.TimeOfDayPtr(startMinutes)
		b.End = converter.TimeOfDayPtr(endMinutes)
		b.Kind = schedule.BlockoutKind(kind)
		blockouts = append(blockouts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read blockouts", err)
	}
	return blockouts, nil
}
