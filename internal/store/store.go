// Package store keeps a history of ranked frequency lists. Every run is
// saved on its own; tables from different runs are never merged.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/xhy51/wordfreq/internal/freq"
)

// ErrNotFound is returned when no run has the requested ID.
var ErrNotFound = errors.New("run not found")

// Run is one saved pipeline result.
type Run struct {
	ID        string       `json:"id"`
	Source    string       `json:"source"`
	Tokens    int          `json:"tokens"`
	Kept      int          `json:"kept"`
	CreatedAt time.Time    `json:"created_at"`
	Entries   []freq.Entry `json:"entries,omitempty"`
}

// NewRun wraps a pipeline result in a Run with a fresh ID.
func NewRun(source string, res *freq.Result) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Source:    source,
		Tokens:    res.Tokens,
		Kept:      res.Kept,
		CreatedAt: time.Now().UTC(),
		Entries:   res.Ranked,
	}
}

// Store persists runs.
type Store interface {
	// Save stores a run. Saving an ID twice is an error.
	Save(ctx context.Context, run *Run) error

	// Get returns a run with its entries in rank order.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns all runs without entries, newest first.
	List(ctx context.Context) ([]Run, error)

	// Close releases the store's resources.
	Close() error
}
