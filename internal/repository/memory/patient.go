package memory

import (
	"context"
	"sync"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/pkg/errors"
)

// PatientRepository is an in-memory patient registry. Each instance owns its
// own table; iteration order is insertion order.
type PatientRepository struct {
	mu      sync.RWMutex
	records map[string]model.PatientRecord
	order   []string
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		records: make(map[string]model.PatientRecord),
	}
}

func (r *PatientRepository) Create(ctx context.Context, record model.PatientRecord) error {
	id := record.ID()
	if id == model.ValueUnknown {
		return errors.MissingField("Patient ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; ok {
		return errors.AlreadyExists("Patient")
	}
	r.records[id] = record.Clone()
	r.order = append(r.order, id)
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id string) (model.PatientRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, errors.NotFound("Patient")
	}
	return record.Clone(), nil
}

func (r *PatientRepository) Update(ctx context.Context, id string, patch model.JSONMap) (model.PatientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return nil, errors.NotFound("Patient")
	}
	record.Merge(patch)
	return record.Clone(), nil
}

func (r *PatientRepository) Upsert(ctx context.Context, id string, patch model.JSONMap) (model.PatientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		record = model.PatientRecord{model.FieldID: id}
		r.records[id] = record
		r.order = append(r.order, id)
	}
	record.Merge(patch)
	return record.Clone(), nil
}

func (r *PatientRepository) List(ctx context.Context, status string) ([]model.PatientRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.PatientRecord, 0, len(r.order))
	for _, id := range r.order {
		record := r.records[id]
		if status != "" && record.StringField(model.FieldStatus) != status {
			continue
		}
		out = append(out, record.Clone())
	}
	return out, nil
}

func (r *PatientRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}
