//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL mirrors the statements the repositories run against. The e2e
// harness applies it to each freshly created test database.
const schemaSQL = `
CREATE TABLE users (
	id            uuid PRIMARY KEY,
	name          text NOT NULL,
	email         text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	role          text NOT NULL,
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE venues (
	id                uuid PRIMARY KEY,
	owner_id          uuid NOT NULL REFERENCES users(id),
	name              text NOT NULL,
	description       text NOT NULL DEFAULT '',
	city              text NOT NULL,
	sport             text NOT NULL,
	capacity          int NOT NULL,
	hourly_rate_paise bigint NOT NULL,
	daily_rate_paise  bigint NOT NULL,
	status            text NOT NULL,
	weekly_schedule   jsonb NOT NULL,
	created_at        timestamptz NOT NULL DEFAULT now(),
	updated_at        timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE blockouts (
	id            uuid PRIMARY KEY,
	venue_id      uuid NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
	start_date    date NOT NULL,
	end_date      date NOT NULL,
	start_minutes int,
	end_minutes   int,
	reason        text NOT NULL,
	kind          text NOT NULL,
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE bookings (
	id                 uuid PRIMARY KEY,
	venue_id           uuid NOT NULL REFERENCES venues(id),
	user_id            uuid NOT NULL REFERENCES users(id),
	booking_date       date NOT NULL,
	booking_type       text NOT NULL,
	start_minutes      int NOT NULL,
	end_minutes        int NOT NULL,
	guest_count        int NOT NULL,
	contact_name       text NOT NULL,
	contact_email      text NOT NULL,
	contact_phone      text NOT NULL,
	special_requests   text,
	venue_amount_paise bigint NOT NULL,
	platform_fee_paise bigint NOT NULL,
	total_paise        bigint NOT NULL,
	status             text NOT NULL,
	payment_order_id   text NOT NULL,
	payment_id         text,
	created_at         timestamptz NOT NULL DEFAULT now(),
	updated_at         timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX idx_bookings_venue_date ON bookings (venue_id, booking_date);
`

// ApplySchema creates the application tables in the given database.
func ApplySchema(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, schemaSQL)
	return err
}

// ResetDB empties all application tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, blockouts, venues, users CASCADE")
	return err
}

// SeedUser inserts a minimal account row and returns its id.
func SeedUser(pool *pgxpool.Pool, role string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		id, "Test "+role, id.String()+"@example.com", "x", role,
	)
	return id, err
}
