package repository

import (
	"context"

	"github.com/sarops/medic-api/internal/model"
)

// PatientRepository owns the patient registry. Records are never physically
// deleted; discharge is a status transition handled by the service layer.
type PatientRepository interface {
	// Create stores a new record, failing with AlreadyExists on a duplicate id.
	Create(ctx context.Context, record model.PatientRecord) error
	// Get returns the record for id, failing with NotFound when absent.
	Get(ctx context.Context, id string) (model.PatientRecord, error)
	// Update merges patch into an existing record (patch wins), failing with
	// NotFound when absent. Returns the full updated record.
	Update(ctx context.Context, id string, patch model.JSONMap) (model.PatientRecord, error)
	// Upsert merges patch into the record for id, creating it when absent.
	// Triage intake is the only caller allowed to create implicitly.
	Upsert(ctx context.Context, id string, patch model.JSONMap) (model.PatientRecord, error)
	// List returns all records, optionally filtered to an exact status match.
	List(ctx context.Context, status string) ([]model.PatientRecord, error)
	// Count returns the number of records.
	Count(ctx context.Context) (int, error)
}

// InventoryRepository owns item quantities and reorder thresholds. Quantities
// are stored unconditionally and may go negative.
type InventoryRepository interface {
	Quantity(ctx context.Context, item string) (int, error)
	SetQuantity(ctx context.Context, item string, quantity int) error
	Threshold(ctx context.Context, item string) (int, error)
	SetThreshold(ctx context.Context, item string, threshold int) error
	Snapshot(ctx context.Context) (map[string]int, error)
}

// TeamHealthRepository owns the single team-health aggregate.
type TeamHealthRepository interface {
	Get(ctx context.Context) (model.TeamHealth, error)
	Update(ctx context.Context, update model.TeamHealthUpdate) (model.TeamHealth, error)
}
