package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The unique index is the same-day duplicate guard: one claim per employee
// per UTC calendar day, enforced atomically by the store instead of a
// check-then-insert round trip.
const schema = `
CREATE TABLE IF NOT EXISTS claims (
	id               BIGSERIAL PRIMARY KEY,
	type             TEXT NOT NULL,
	employee_id      TEXT NOT NULL,
	employee_name    TEXT NOT NULL,
	amount           NUMERIC(12,2) NOT NULL,
	submission_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	status           TEXT NOT NULL DEFAULT 'pending'
		CHECK (status IN ('pending', 'approved', 'rejected')),
	travel_date      TEXT,
	from_destination TEXT,
	to_destination   TEXT,
	purpose          TEXT,
	treatment_date   TEXT,
	hospital         TEXT,
	treatment_type   TEXT,
	claim_date       TEXT,
	claim_type       TEXT,
	description      TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS claims_employee_day_key
	ON claims (employee_id, ((submission_date AT TIME ZONE 'utc')::date));
`

// EnsureSchema creates the claims table and its indexes if missing.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
