package health

import (
	"context"

	"github.com/sarops/medic-api/internal/model"
	"github.com/sarops/medic-api/internal/repository"
	"github.com/sarops/medic-api/pkg/logger"
)

// Service reports and updates the SAR team health aggregate.
type Service struct {
	repo   repository.TeamHealthRepository
	logger *logger.Logger
}

func NewService(repo repository.TeamHealthRepository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// Monitor returns the current aggregate unchanged.
func (s *Service) Monitor(ctx context.Context) (model.TeamHealth, error) {
	return s.repo.Get(ctx)
}

// Update applies a partial update and returns the full post-update aggregate.
func (s *Service) Update(ctx context.Context, update model.TeamHealthUpdate) (model.TeamHealth, error) {
	updated, err := s.repo.Update(ctx, update)
	if err != nil {
		return model.TeamHealth{}, err
	}
	s.logger.Info("team health updated",
		"average_stress_level", updated.AverageStressLevel,
		"high_risk_members", updated.HighRiskMembers)
	return updated, nil
}
