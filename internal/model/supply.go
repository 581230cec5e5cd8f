package model

// Reorder status labels
const (
	ReorderPlaced    = "reorder placed"
	ReorderNotNeeded = "no reorder needed"
)

// DefaultReorderThreshold applies to items with no configured threshold.
const DefaultReorderThreshold = 10

// SupplyResult reports an inventory adjustment.
type SupplyResult struct {
	Item            string `json:"item"`
	UpdatedQuantity int    `json:"updated_quantity"`
	Status          string `json:"status"`
	ReorderStatus   string `json:"reorder_status"`
}

func (r SupplyResult) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"item":             r.Item,
		"updated_quantity": r.UpdatedQuantity,
		"status":           r.Status,
		"reorder_status":   r.ReorderStatus,
	}
}

// DefaultInventory is the stock the coordinator starts with.
func DefaultInventory() map[string]int {
	return map[string]int{
		"bandages":    100,
		"antiseptic":  50,
		"painkillers": 75,
	}
}

// DefaultReorderThresholds are the per-item floors for the default stock.
func DefaultReorderThresholds() map[string]int {
	return map[string]int{
		"bandages":    80,
		"antiseptic":  40,
		"painkillers": 50,
	}
}
