// Package record implements the ledger record store using PostgreSQL.
// Every record is a JSON document addressed by a fixed key and replaced
// wholesale on write.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

const table = "ledger_records"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides ledger record persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new record repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type recordRow struct {
	Payload   []byte    `db:"payload"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Get returns the raw JSON stored under key.
// Returns domain.ErrNotFound if nothing has been stored yet.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psql.
		Select("payload", "updated_at").
		From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("record %s: %w", key, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "record", key)
	}

	return row.Payload, nil
}

// Put stores value under key, replacing any previous document.
func (r *Repo) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := psql.
		Insert(table).
		Columns("key", "payload", "updated_at").
		Values(key, value, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "record", key)
	}
	return nil
}

// Ping checks that the records table is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	query, args, err := psql.Select("1").From(table).Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("build ping: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ping %s: %w", table, err)
	}
	rows.Close()
	return rows.Err()
}
