package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"requisitionprint/internal/domain"
)

// pqUndefinedTable is the SQLSTATE for a missing relation.
const pqUndefinedTable = "42P01"

const createSettingsTable = `
	CREATE TABLE IF NOT EXISTS app_settings (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type settingsRepository struct {
	DB *sql.DB
}

// Open opens a Postgres connection pool for dsn and verifies it with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewSettingsRepository returns a domain.SettingsStore implemented with Postgres.
func NewSettingsRepository(db *sql.DB) domain.SettingsStore {
	return &settingsRepository{DB: db}
}

// Migrate creates the app_settings table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createSettingsTable)
	return err
}

func (r *settingsRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return value, nil
}

func (r *settingsRepository) Save(ctx context.Context, key string, value []byte) error {
	err := r.upsert(ctx, key, value)
	if isUndefinedTable(err) {
		if err := Migrate(ctx, r.DB); err != nil {
			return fmt.Errorf("create app_settings: %w", err)
		}
		err = r.upsert(ctx, key, value)
	}
	return err
}

func (r *settingsRepository) upsert(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	// jsonb takes text; lib/pq would send []byte as bytea.
	_, err := r.DB.ExecContext(ctx, query, key, string(value))
	return err
}

func isUndefinedTable(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == pqUndefinedTable
}
