package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// historyEnabled writes a 404 and returns false when no RunServicer is wired.
func (s *Server) historyEnabled(w http.ResponseWriter, r *http.Request) bool {
	if s.runs == nil {
		s.writeError(w, r, fmt.Errorf("run history is disabled: %w", domain.ErrNotFound))
		return false
	}
	return true
}

// createRun handles POST /scenarios/{name}/runs.
func (s *Server) createRun(w http.ResponseWriter, r *http.Request) {
	if !s.historyEnabled(w, r) {
		return
	}
	run, err := s.runs.Record(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/runs/"+run.ID.String())
	writeJSON(w, http.StatusCreated, run)
}

// listRuns handles GET /runs?page=&limit=.
func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	if !s.historyEnabled(w, r) {
		return
	}
	var page, limit *int
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &page); err != nil {
		badRequest(w, err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		badRequest(w, err.Error())
		return
	}

	runs, err := s.runs.List(r.Context(), domain.NewRunPage(page, limit))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// runID parses the {id} path parameter, writing a 400 when it is not a UUID.
func runID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "id must be a UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

// getRun handles GET /runs/{id} with the same format and train parameters
// as the scenario trajectories endpoint.
func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	if !s.historyEnabled(w, r) {
		return
	}
	id, ok := runID(w, r)
	if !ok {
		return
	}
	run, err := s.runs.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeTrajectories(w, r, "run-"+run.ID.String(), domain.Result{
		Scenario:     run.Scenario,
		Trajectories: run.Trajectories,
	})
}

// deleteRun handles DELETE /runs/{id}.
func (s *Server) deleteRun(w http.ResponseWriter, r *http.Request) {
	if !s.historyEnabled(w, r) {
		return
	}
	id, ok := runID(w, r)
	if !ok {
		return
	}
	if err := s.runs.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
