package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/repo"
)

// RunService records computed catalog scenarios and reads them back.
type RunService struct {
	runs      repo.RunRepo
	scenarios *ScenarioService
}

// NewRunService constructs a RunService that computes through scenarios and
// persists through runs.
func NewRunService(runs repo.RunRepo, scenarios *ScenarioService) *RunService {
	return &RunService{runs: runs, scenarios: scenarios}
}

// Record computes the named catalog scenario and stores its trajectories.
// Trains that failed are not stored. Returns domain.ErrNotFound for an
// unknown scenario.
func (s *RunService) Record(ctx context.Context, name string) (domain.Run, error) {
	res, err := s.scenarios.Trajectories(ctx, name)
	if err != nil {
		return domain.Run{}, fmt.Errorf("service.RunService.Record: %w", err)
	}
	run, err := s.runs.Create(ctx, domain.Run{Scenario: res.Scenario, Trajectories: res.Trajectories})
	if err != nil {
		return domain.Run{}, fmt.Errorf("service.RunService.Record: %w", err)
	}
	return run, nil
}

// GetByID returns a stored run with its trajectories.
// Returns domain.ErrNotFound if it does not exist.
func (s *RunService) GetByID(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return domain.Run{}, fmt.Errorf("service.RunService.GetByID: %w", err)
	}
	return run, nil
}

// Delete removes a stored run and its samples.
// Returns domain.ErrNotFound if it does not exist.
func (s *RunService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.runs.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.RunService.Delete: %w", err)
	}
	return nil
}

// List returns stored run headers, newest first.
// Always returns a non-nil slice.
func (s *RunService) List(ctx context.Context, page domain.RunPage) ([]domain.Run, error) {
	runs, err := s.runs.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("service.RunService.List: %w", err)
	}
	if runs == nil {
		return []domain.Run{}, nil
	}
	return runs, nil
}
