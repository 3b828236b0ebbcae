// Package livestatus implements the live counter repository.
//
// Counters are mutated only through Increment, a compare-and-increment
// loop: read the current value, conditionally write value+1, retry when a
// concurrent writer got there first. A plain read-then-write overwrite
// would drop increments under concurrent confirmations.
package livestatus

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
)

// ViewingsBookedCounter is the counter incremented on every confirmation.
const ViewingsBookedCounter = "viewingsBookedCount"

// Repo provides live counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new live status repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the counter's current value. A counter that was never
// incremented reads as 0.
func (r *Repo) Get(ctx context.Context, name string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var value int64
	err := q.QueryRow(ctx, `SELECT value FROM live_status WHERE name = $1`, name).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "live_status", name)
	}

	return value, nil
}

// Increment atomically adds 1 to the named counter and returns the new
// value. A counter that does not exist yet starts from 0. The loop retries
// until its conditional write wins against concurrent writers; it gives up
// only when the context is done.
func (r *Repo) Increment(ctx context.Context, name string) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("live_status %s: %w", name, err)
		}

		var current int64
		err := q.QueryRow(ctx, `SELECT value FROM live_status WHERE name = $1`, name).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			tag, err := q.Exec(ctx,
				`INSERT INTO live_status (name, value) VALUES ($1, 1) ON CONFLICT (name) DO NOTHING`, name)
			if err != nil {
				return 0, postgres.MapError(err, "live_status", name)
			}
			if tag.RowsAffected() == 1 {
				return 1, nil
			}
			// Lost the creation race; the counter exists now.
			continue
		}
		if err != nil {
			return 0, postgres.MapError(err, "live_status", name)
		}

		tag, err := q.Exec(ctx,
			`UPDATE live_status SET value = $1 WHERE name = $2 AND value = $3`,
			current+1, name, current)
		if err != nil {
			return 0, postgres.MapError(err, "live_status", name)
		}
		if tag.RowsAffected() == 1 {
			return current + 1, nil
		}
		// Conflicting concurrent writer; re-read and retry.
	}
}
