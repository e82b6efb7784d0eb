// Package handler implements the HTTP API for the train graph planner.
// Handlers are methods on Server and are split by resource into
// health.go, scenario.go, compute.go, and run.go.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/middleware"
	"github.com/cxd309/stem-train-planning/spec"
)

// ScenarioServicer is what the scenario and compute handlers need.
// Defined here, in the consumer, so tests can inject a fake.
type ScenarioServicer interface {
	List() []domain.ScenarioSummary
	Get(name string) (domain.Scenario, error)
	Trajectories(ctx context.Context, name string) (domain.Result, error)
	Compute(ctx context.Context, sc domain.Scenario) (domain.Result, error)
}

// RunServicer is what the run history handlers need.
type RunServicer interface {
	Record(ctx context.Context, name string) (domain.Run, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Run, error)
	List(ctx context.Context, page domain.RunPage) ([]domain.Run, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the handler dependencies. runs may be nil, in which case the
// run history endpoints answer 404.
type Server struct {
	scenarios ScenarioServicer
	runs      RunServicer
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(scenarios ScenarioServicer, runs RunServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{scenarios: scenarios, runs: runs, log: log}
}

// Routes returns the API router. Request bodies on POST /trajectories are
// capped at maxBodyBytes.
func (s *Server) Routes(maxBodyBytes int64) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Get("/scenarios", s.listScenarios)
	r.Get("/scenarios/{name}/trajectories", s.getScenarioTrajectories)
	r.Get("/scenarios/{name}/chart.png", s.getScenarioChart)
	r.Post("/scenarios/{name}/runs", s.createRun)

	r.With(middleware.NewMaxBodySizeHandler(maxBodyBytes)).Post("/trajectories", s.computeTrajectories)

	r.Get("/runs", s.listRuns)
	r.Get("/runs/{id}", s.getRun)
	r.Delete("/runs/{id}", s.deleteRun)

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
