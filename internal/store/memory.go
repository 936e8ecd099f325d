package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

var _ Store = (*Memory)(nil)

// Memory stores runs in memory.
type Memory struct {
	mu   sync.RWMutex
	runs map[string]Run
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{runs: make(map[string]Run)}
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, run *Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.runs[run.ID]; dup {
		return fmt.Errorf("run %s already saved", run.ID)
	}
	r := *run
	r.Entries = slices.Clone(run.Entries)
	m.runs[run.ID] = r
	return nil
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.runs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.Entries = slices.Clone(r.Entries)
	return &r, nil
}

// List implements Store.
func (m *Memory) List(_ context.Context) ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]Run, 0, len(m.runs))
	for _, r := range m.runs {
		r.Entries = nil
		runs = append(runs, r)
	}
	slices.SortFunc(runs, func(a, b Run) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return runs, nil
}

// Close implements Store.
func (m *Memory) Close() error {
	// nothing to release
	return nil
}
