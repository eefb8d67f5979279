package releasecache

import (
	"context"
	"sync"

	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/pkg/clock"
)

// InMemoryRepository implements Repository for a single process
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*CachedRelease
}

// NewInMemory creates an empty in-memory cache. A nil clock uses wall time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*CachedRelease),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get returns the cached release if it has not expired
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entry, exists := r.store[input.Repo]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound(errEntryMissing)
	}

	if expired(entry, r.clock.Now()) {
		r.mu.Lock()
		if current, ok := r.store[input.Repo]; ok && current == entry {
			delete(r.store, input.Repo)
		}
		r.mu.Unlock()
		return nil, errors.NotFound(errEntryExpired)
	}

	out := *entry
	return &GetOutput{Entry: &out}, nil
}

// Put stores a release, replacing any previous entry
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	entry := newEntry(input, r.clock.Now())

	r.mu.Lock()
	r.store[input.Repo] = entry
	r.mu.Unlock()

	out := *entry
	return &PutOutput{Entry: &out}, nil
}
