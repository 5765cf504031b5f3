package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"emlakjet_scraper/models"
)

// RunStore keeps one row of history per collection run in a local SQLite
// file, so scheduled runs can be audited without digging through logs.
type RunStore struct {
	db *sql.DB
}

func NewRunStore(dbPath string) (*RunStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	store := &RunStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *RunStore) Close() error {
	return s.db.Close()
}

func (s *RunStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collect_runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME,
		finished_at DATETIME,
		status TEXT,
		pages_visited INTEGER DEFAULT 0,
		listings_found INTEGER DEFAULT 0,
		listings_kept INTEGER DEFAULT 0,
		errors_count INTEGER DEFAULT 0,
		output_path TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_collect_runs_started ON collect_runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *RunStore) CreateRun(run *models.CollectRun) error {
	_, err := s.db.Exec(
		`INSERT INTO collect_runs (id, started_at, status) VALUES (?, ?, ?)`,
		run.ID.String(), run.StartedAt, run.Status,
	)
	return err
}

func (s *RunStore) UpdateRun(run *models.CollectRun) error {
	_, err := s.db.Exec(
		`UPDATE collect_runs
		 SET finished_at = ?, status = ?, pages_visited = ?, listings_found = ?,
		     listings_kept = ?, errors_count = ?, output_path = ?
		 WHERE id = ?`,
		run.FinishedAt, run.Status, run.PagesVisited, run.ListingsFound,
		run.ListingsKept, run.ErrorsCount, run.OutputPath, run.ID.String(),
	)
	return err
}

// LastRun returns the most recently started run, or nil when the table is
// empty.
func (s *RunStore) LastRun() (*models.CollectRun, error) {
	row := s.db.QueryRow(
		`SELECT id, started_at, finished_at, status, pages_visited,
		        listings_found, listings_kept, errors_count, output_path
		 FROM collect_runs ORDER BY started_at DESC LIMIT 1`,
	)

	var run models.CollectRun
	var id string
	err := row.Scan(&id, &run.StartedAt, &run.FinishedAt, &run.Status,
		&run.PagesVisited, &run.ListingsFound, &run.ListingsKept,
		&run.ErrorsCount, &run.OutputPath)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := run.ID.UnmarshalText([]byte(id)); err != nil {
		return nil, err
	}
	return &run, nil
}
