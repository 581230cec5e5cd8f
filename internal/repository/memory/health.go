package memory

import (
	"context"
	"sync"

	"github.com/sarops/medic-api/internal/model"
)

// TeamHealthRepository holds the single team-health aggregate, mutated in
// place by partial updates.
type TeamHealthRepository struct {
	mu     sync.RWMutex
	health model.TeamHealth
}

func NewTeamHealthRepository(seed model.TeamHealth) *TeamHealthRepository {
	return &TeamHealthRepository{health: seed}
}

func (r *TeamHealthRepository) Get(ctx context.Context) (model.TeamHealth, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyLocked(), nil
}

func (r *TeamHealthRepository) Update(ctx context.Context, update model.TeamHealthUpdate) (model.TeamHealth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if update.AverageStressLevel != nil {
		r.health.AverageStressLevel = *update.AverageStressLevel
	}
	if update.HighRiskMembers != nil {
		r.health.HighRiskMembers = *update.HighRiskMembers
	}
	if update.Recommendations != nil {
		r.health.Recommendations = append([]string(nil), update.Recommendations...)
	}
	return r.copyLocked(), nil
}

func (r *TeamHealthRepository) copyLocked() model.TeamHealth {
	out := r.health
	out.Recommendations = append([]string(nil), r.health.Recommendations...)
	return out
}
