package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	logger "github.com/sirupsen/logrus"
)

// Database is a Postgres-backed session store. Entries older than ttl are
// invisible to Get and removed by Cleanup.
type Database struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

func NewDatabase(connString string, ttl time.Duration) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
		ttl:  ttl,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

func (d *Database) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM session_entry
		WHERE session_id = $1 AND key = $2
		AND ($3::float8 = 0 OR updated_at > now() - make_interval(secs => $3::float8))`

	row := d.pool.QueryRow(ctx, query, sessionID, key, d.ttl.Seconds())

	var value string
	err := row.Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w", &StoreError{Op: "get", SessionID: sessionID, Err: err})
	}
	return value, true, nil
}

func (d *Database) Set(ctx context.Context, sessionID, key, value string) error {

	query := `
		INSERT INTO session_entry (session_id, key, value)
		VALUES ($1, $2, $3)
		`
	_, err := d.pool.Exec(ctx, query, sessionID, key, value)

	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || !pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%w", &StoreError{Op: "insert", SessionID: sessionID, Err: err})
	}

	// entry exists, overwrite it
	query = `
		UPDATE session_entry
		SET value = $3, updated_at = now()
		WHERE session_id = $1 AND key = $2
	`
	_, err = d.pool.Exec(ctx, query, sessionID, key, value)
	if err != nil {
		return fmt.Errorf("%w", &StoreError{Op: "update", SessionID: sessionID, Err: err})
	}
	return nil
}

func (d *Database) Delete(ctx context.Context, sessionID string, keys ...string) error {
	query := `
		DELETE FROM session_entry
		WHERE session_id = $1 AND key = ANY($2)
	`
	_, err := d.pool.Exec(ctx, query, sessionID, keys)
	if err != nil {
		return fmt.Errorf("%w", &StoreError{Op: "delete", SessionID: sessionID, Err: err})
	}
	return nil
}

// Cleanup removes expired entries and returns how many were removed.
func (d *Database) Cleanup(ctx context.Context) (int64, error) {
	if d.ttl <= 0 {
		return 0, nil
	}
	query := `
		DELETE FROM session_entry
		WHERE updated_at < now() - make_interval(secs => $1::float8)
	`
	tag, err := d.pool.Exec(ctx, query, d.ttl.Seconds())
	if err != nil {
		return 0, fmt.Errorf("%w", &StoreError{Op: "cleanup", Err: err})
	}
	return tag.RowsAffected(), nil
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (d *Database) RunCleanup(ctx context.Context, interval time.Duration) {
	go func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("Context cancel, stopping session cleanup")
				return
			case <-ticker.C:
				removed, err := d.Cleanup(ctx)
				if err != nil {
					logger.Error(err)
					continue
				}
				if removed > 0 {
					logger.Infof("Removed %d expired session entries", removed)
				}
			}
		}
	}(ctx)
}
