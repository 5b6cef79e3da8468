package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todolists/internal/platform/metrics"
	"todolists/internal/session/models"
	"todolists/pkg/platform/sentinel"
	"todolists/pkg/requestcontext"
)

const backendPostgres = "postgres"

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS sessions_expires_at_idx ON sessions (expires_at);
`

// PostgresStore keeps sessions in a PostgreSQL table so they survive
// restarts of every instance.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// NewPostgres constructs a PostgreSQL-backed store. Call EnsureSchema once
// at startup.
func NewPostgres(db *sql.DB, opts ...Option) *PostgresStore {
	o := applyOptions(opts)
	return &PostgresStore{db: db, metrics: o.metrics}
}

// EnsureSchema creates the sessions table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create sessions schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, id string) (*models.State, error) {
	defer s.metrics.ObserveSessionStore(backendPostgres, "load", time.Now())

	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM sessions WHERE id = $1 AND expires_at > $2`,
		id, requestcontext.Now(ctx),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w: %w", sentinel.ErrUnavailable, err)
	}
	state, err := models.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel.ErrCorrupt, err)
	}
	return state, nil
}

func (s *PostgresStore) Save(ctx context.Context, id string, state *models.State, ttl time.Duration) error {
	defer s.metrics.ObserveSessionStore(backendPostgres, "save", time.Now())

	data, err := models.Encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at`,
		id, data, requestcontext.Now(ctx).Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("save session: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, requestcontext.Now(ctx))
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return int(n), nil
}

func (s *PostgresStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
