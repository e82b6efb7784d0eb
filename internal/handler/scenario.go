package handler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cxd309/stem-train-planning/internal/render"
)

// listScenarios handles GET /scenarios.
func (s *Server) listScenarios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.scenarios.List())
}

// getScenarioTrajectories handles GET /scenarios/{name}/trajectories.
// ?format=json|csv|msgpack selects the encoding; ?train=label narrows to one train.
func (s *Server) getScenarioTrajectories(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	res, err := s.scenarios.Trajectories(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeTrajectories(w, r, name, res)
}

// getScenarioChart handles GET /scenarios/{name}/chart.png.
// The image is rendered into memory first so a render error still yields a
// JSON error response instead of a truncated PNG.
func (s *Server) getScenarioChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	sc, err := s.scenarios.Get(name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.scenarios.Trajectories(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := render.DefaultOptions()
	opts.Title = sc.Description
	var buf bytes.Buffer
	if err := render.TrainGraph(&buf, res.Trajectories, sc.Network, opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}
