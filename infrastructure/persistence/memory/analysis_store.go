package memory

import (
	"context"
	"sync"

	"evograph/application/ports"
	pkgerrors "evograph/pkg/errors"
)

// AnalysisStore keeps the current analysis snapshot in process memory.
// Analyses are recomputed from records on demand, so there is nothing
// durable to persist; a restart simply starts empty.
type AnalysisStore struct {
	mu      sync.RWMutex
	current *ports.AnalysisSnapshot
}

// NewAnalysisStore creates an empty store
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{}
}

// Put replaces the current snapshot
func (s *AnalysisStore) Put(ctx context.Context, snapshot *ports.AnalysisSnapshot) error {
	if snapshot == nil {
		return pkgerrors.NewValidationError("snapshot cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snapshot
	return nil
}

// Current returns the snapshot being served
func (s *AnalysisStore) Current(ctx context.Context) (*ports.AnalysisSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Clear drops the current snapshot
func (s *AnalysisStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
