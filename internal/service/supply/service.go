package supply

import (
	"context"
	"fmt"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/repository"
	"github.com/sarops/medic-api/pkg/logger"
	"github.com/sarops/medic-api/pkg/metrics"
)

// Procurement is the external system a reorder is handed to.
type Procurement interface {
	Reorder(ctx context.Context, item string, shortfall int)
}

// Service applies signed quantity deltas to the inventory and places reorders
// when stock falls below an item's threshold. Quantities may go negative;
// there is no floor.
type Service struct {
	inventory   repository.InventoryRepository
	procurement Procurement
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

func NewService(inventory repository.InventoryRepository, procurement Procurement, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		inventory:   inventory,
		procurement: procurement,
		logger:      log,
		metrics:     m,
	}
}

func (s *Service) Adjust(ctx context.Context, item string, delta int) (model.SupplyResult, error) {
	current, err := s.inventory.Quantity(ctx, item)
	if err != nil {
		return model.SupplyResult{}, fmt.Errorf("failed to read inventory for %s: %w", item, err)
	}

	updated := current + delta
	if err := s.inventory.SetQuantity(ctx, item, updated); err != nil {
		return model.SupplyResult{}, fmt.Errorf("failed to update inventory for %s: %w", item, err)
	}
	s.metrics.InventoryQuantity.WithLabelValues(item).Set(float64(updated))
	s.logger.Info("inventory updated", "item", item, "quantity", updated)

	threshold, err := s.inventory.Threshold(ctx, item)
	if err != nil {
		return model.SupplyResult{}, fmt.Errorf("failed to read reorder threshold for %s: %w", item, err)
	}

	reorderStatus := model.ReorderNotNeeded
	if updated < threshold {
		s.procurement.Reorder(ctx, item, threshold-updated)
		reorderStatus = model.ReorderPlaced
	}

	return model.SupplyResult{
		Item:            item,
		UpdatedQuantity: updated,
		Status:          "updated",
		ReorderStatus:   reorderStatus,
	}, nil
}

// Snapshot returns the current quantity of every known item.
func (s *Service) Snapshot(ctx context.Context) (map[string]int, error) {
	return s.inventory.Snapshot(ctx)
}
