package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full DDL for the service. Every statement is idempotent so the
// bootstrap can run on every startup. The UNIQUE constraint on users.email and
// the ON DELETE CASCADE on candidates.job_id are load-bearing: they close the
// check-then-write race on duplicate emails and make job deletion remove the
// job's candidates in a single atomic statement.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id    BIGSERIAL PRIMARY KEY,
    name  TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    role  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS jobs (
    id           BIGSERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL,
    area         TEXT NOT NULL,
    published_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
    id     BIGSERIAL PRIMARY KEY,
    name   TEXT NOT NULL,
    skills TEXT NOT NULL,
    job_id BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates(job_id);
`

// EnsureSchema creates the three tables on first startup if they are absent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
