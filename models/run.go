package models

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusRunning     RunStatus = "running"
	RunStatusCompleted   RunStatus = "completed"
	RunStatusInterrupted RunStatus = "interrupted"
	RunStatusFailed      RunStatus = "failed"
)

// CollectRun is one row of run history: pages walked, listings kept,
// where the output went.
type CollectRun struct {
	ID            uuid.UUID  `db:"id"`
	StartedAt     time.Time  `db:"started_at"`
	FinishedAt    *time.Time `db:"finished_at"`
	Status        RunStatus  `db:"status"`
	PagesVisited  int        `db:"pages_visited"`
	ListingsFound int        `db:"listings_found"`
	ListingsKept  int        `db:"listings_kept"`
	ErrorsCount   int        `db:"errors_count"`
	OutputPath    string     `db:"output_path"`
}
