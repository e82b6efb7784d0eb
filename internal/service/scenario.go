package service

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/scenario"
)

// ScenarioService assembles scenarios and runs every train through the
// trajectory engine. Results for catalog scenarios are cached: the engine is
// deterministic, so a cached result is always identical to a fresh one.
type ScenarioService struct {
	cache *lru.Cache[string, domain.Result]
	log   *slog.Logger
}

// NewScenarioService constructs a ScenarioService whose cache holds up to
// cacheSize catalog results.
func NewScenarioService(cacheSize int, log *slog.Logger) (*ScenarioService, error) {
	cache, err := lru.New[string, domain.Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("service.NewScenarioService: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &ScenarioService{cache: cache, log: log}, nil
}

// List returns a summary of every catalog scenario.
func (s *ScenarioService) List() []domain.ScenarioSummary {
	catalog := scenario.Catalog()
	out := make([]domain.ScenarioSummary, 0, len(catalog))
	for _, sc := range catalog {
		out = append(out, sc.Summary())
	}
	return out
}

// Get returns the named catalog scenario.
// Returns domain.ErrNotFound if it does not exist.
func (s *ScenarioService) Get(name string) (domain.Scenario, error) {
	sc, err := scenario.Lookup(name)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("service.ScenarioService.Get: %w", err)
	}
	return sc, nil
}

// Trajectories computes (or returns the cached result for) the named catalog
// scenario. The returned Result is shared with the cache and must not be modified.
func (s *ScenarioService) Trajectories(ctx context.Context, name string) (domain.Result, error) {
	if res, ok := s.cache.Get(name); ok {
		return res, nil
	}
	sc, err := s.Get(name)
	if err != nil {
		return domain.Result{}, err
	}
	res, err := s.Compute(ctx, sc)
	if err != nil {
		return domain.Result{}, fmt.Errorf("service.ScenarioService.Trajectories: %w", err)
	}
	s.cache.Add(name, res)
	return res, nil
}

// Compute runs every train in sc concurrently. A train whose timetable fails
// is reported in Result.Failures and does not affect the others.
//
// Returns domain.ErrValidation if a label is empty or used twice, and the
// context error if ctx is cancelled before every train has been computed.
func (s *ScenarioService) Compute(ctx context.Context, sc domain.Scenario) (domain.Result, error) {
	if err := validateTrains(sc.Trains); err != nil {
		return domain.Result{}, err
	}

	trajectories := make([]domain.Trajectory, len(sc.Trains))
	errs := make([]error, len(sc.Trains))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, train := range sc.Trains {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trajectories[i], errs[i] = ComputeTrajectory(train.Timetable, train.Velocity, sc.Network)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Result{}, fmt.Errorf("service.ScenarioService.Compute: %w", err)
	}

	res := domain.Result{Scenario: sc.Name, Trajectories: domain.NewTrajectorySet()}
	for i, train := range sc.Trains {
		if errs[i] != nil {
			s.log.WarnContext(ctx, "train skipped",
				"scenario", sc.Name,
				"train", train.Label,
				"error", errs[i],
			)
			res.Failures = append(res.Failures, domain.TrainFailure{Label: train.Label, Err: errs[i]})
			continue
		}
		res.Trajectories.Set(train.Label, trajectories[i])
	}
	return res, nil
}

// validateTrains enforces that every label is present and unique within a scenario.
func validateTrains(trains []domain.TrainRun) error {
	seen := make(map[string]struct{}, len(trains))
	for i, t := range trains {
		if strings.TrimSpace(t.Label) == "" {
			return fmt.Errorf("%w: train %d: label is required", domain.ErrValidation, i)
		}
		if _, dup := seen[t.Label]; dup {
			return fmt.Errorf("%w: duplicate train label %q", domain.ErrValidation, t.Label)
		}
		seen[t.Label] = struct{}{}
	}
	return nil
}
