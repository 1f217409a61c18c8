package summary

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domain "paperforge/internal/domain/summary"
)

// InMemoryRepository is a thread-safe repository used in tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []domain.Record
}

// NewInMemoryRepository constructs an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert appends one record, assigning a fresh ID when empty.
func (r *InMemoryRepository) Insert(ctx context.Context, record *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	stored := *record
	stored.ProjectIdeas = append([]string(nil), record.ProjectIdeas...)
	r.records = append(r.records, stored)
	return nil
}

// ListAll returns stored records ordered by filename.
func (r *InMemoryRepository) ListAll(ctx context.Context) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Record, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out, nil
}

var _ domain.Repository = (*InMemoryRepository)(nil)
