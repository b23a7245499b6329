package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is the in-memory catalog used by tests and local runs.
// Seed it with items up front; saved lists are tracked per user id.
type MemoryRepository struct {
	mu    sync.Mutex
	items map[int64]Item
	saved map[int64]map[int64]struct{}
}

func NewMemoryRepository(seed []Item) *MemoryRepository {
	r := &MemoryRepository{
		items: make(map[int64]Item, len(seed)),
		saved: make(map[int64]map[int64]struct{}),
	}
	for _, it := range seed {
		r.items[it.ID] = it
	}
	return r
}

func sortByID(items []Item) []Item {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (r *MemoryRepository) ListItems(ctx context.Context, kind string) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []Item
	for _, it := range r.items {
		if kind == "" || it.Kind == kind {
			items = append(items, it)
		}
	}
	return sortByID(items), nil
}

func (r *MemoryRepository) ListSaved(ctx context.Context, userID int64) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []Item
	for id := range r.saved[userID] {
		if it, ok := r.items[id]; ok {
			items = append(items, it)
		}
	}
	return sortByID(items), nil
}

func (r *MemoryRepository) SaveItems(ctx context.Context, userID int64, itemIDs []int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.saved[userID]
	if !ok {
		set = make(map[int64]struct{})
		r.saved[userID] = set
	}

	var inserted []int64
	for _, id := range itemIDs {
		if _, exists := r.items[id]; !exists {
			continue
		}
		if _, already := set[id]; already {
			continue
		}
		set[id] = struct{}{}
		inserted = append(inserted, id)
	}
	return inserted, nil
}

func (r *MemoryRepository) DeleteSaved(ctx context.Context, userID int64, itemIDs []int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.saved[userID]

	var deleted int64
	for _, id := range itemIDs {
		if _, ok := set[id]; ok {
			delete(set, id)
			deleted++
		}
	}
	return deleted, nil
}
