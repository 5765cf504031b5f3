package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"emlakjet_scraper/identity"
	"emlakjet_scraper/models"
)

// PostgresStore is the optional long-lived sink: every finished run upserts
// its deduplicated records into one listings table, keyed by dedup key so
// re-running only refreshes capture times.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	config.MaxConns = 4
	config.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS listings (
		dedup_key TEXT PRIMARY KEY,
		captured_at TIMESTAMPTZ NOT NULL,
		price_text TEXT NOT NULL,
		price DOUBLE PRECISION,
		price_per_m2 DOUBLE PRECISION,
		district TEXT,
		neighborhood TEXT,
		location_text TEXT,
		rooms TEXT,
		area_m2 DOUBLE PRECISION,
		floor TEXT,
		details_text TEXT,
		url TEXT,
		first_seen_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_seen_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// UpsertRecords writes the run's final record set in one batch.
func (s *PostgresStore) UpsertRecords(ctx context.Context, records []*models.Record) error {
	query := `
		INSERT INTO listings (
			dedup_key, captured_at, price_text, price, price_per_m2,
			district, neighborhood, location_text, rooms, area_m2,
			floor, details_text, url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (dedup_key) DO UPDATE SET
			captured_at = EXCLUDED.captured_at,
			price = EXCLUDED.price,
			price_per_m2 = EXCLUDED.price_per_m2,
			url = EXCLUDED.url,
			last_seen_at = NOW()`

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(query,
			identity.Key(r), r.CapturedAt, r.PriceText, r.Price, r.PricePerM2(),
			r.District, r.Neighborhood, r.LocationText, r.Rooms, r.AreaM2(),
			r.Floor, r.DetailsText, r.URL,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upsert listing: %w", err)
		}
	}
	return nil
}
