package stats

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu      sync.RWMutex
	results map[string]*Result
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		results: make(map[string]*Result),
	}
}

// Save stores a result, replacing any with the same id
func (r *MemoryRepository) Save(ctx context.Context, result *Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *result
	r.results[result.ID] = &stored
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *result
	return &out, nil
}

func (r *MemoryRepository) List(ctx context.Context, limit int) ([]*Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Result, 0, len(r.results))
	for _, result := range r.results {
		cp := *result
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) Summary(ctx context.Context) (*Summary, error) {
	all, err := r.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	return summarize(all), nil
}

// Close is a no-op for in-memory storage
func (r *MemoryRepository) Close() error {
	return nil
}
