package transactions

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Record
}

// NewMemoryRepository constructs an in-memory repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Record)}
}

func (r *memoryRepository) Create(_ context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[record.ID]; exists {
		return errors.New("transaction record exists")
	}
	r.storage[record.ID] = record
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.storage[id]
	if !ok {
		return Record{}, errors.New("transaction record not found")
	}
	return record, nil
}
