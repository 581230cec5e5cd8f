package memory

import (
	"context"
	"sync"

	"github.com/sarops/medic-api/internal/model"
)

// InventoryRepository is an in-memory inventory and threshold table. Unseen
// items default to zero quantity and the default reorder threshold.
type InventoryRepository struct {
	mu         sync.RWMutex
	quantities map[string]int
	thresholds map[string]int
}

// NewInventoryRepository seeds a repository with the given stock and
// thresholds. Each instance owns its own tables.
func NewInventoryRepository(quantities, thresholds map[string]int) *InventoryRepository {
	r := &InventoryRepository{
		quantities: make(map[string]int, len(quantities)),
		thresholds: make(map[string]int, len(thresholds)),
	}
	for item, qty := range quantities {
		r.quantities[item] = qty
	}
	for item, threshold := range thresholds {
		r.thresholds[item] = threshold
	}
	return r
}

func (r *InventoryRepository) Quantity(ctx context.Context, item string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quantities[item], nil
}

func (r *InventoryRepository) SetQuantity(ctx context.Context, item string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quantities[item] = quantity
	return nil
}

func (r *InventoryRepository) Threshold(ctx context.Context, item string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if threshold, ok := r.thresholds[item]; ok {
		return threshold, nil
	}
	return model.DefaultReorderThreshold, nil
}

func (r *InventoryRepository) SetThreshold(ctx context.Context, item string, threshold int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.thresholds[item] = threshold
	return nil
}

func (r *InventoryRepository) Snapshot(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int, len(r.quantities))
	for item, qty := range r.quantities {
		out[item] = qty
	}
	return out, nil
}
