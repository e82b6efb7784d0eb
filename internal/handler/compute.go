package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/scenario"
)

// ComputeRequest is the body of POST /trajectories.
type ComputeRequest struct {
	Network map[string]float64 `json:"network"`
	Trains  []TrainRequest     `json:"trains"`
}

// TrainRequest describes one train. When Type names a preset (express,
// local, freight), any of Velocity, DepartureStation, and Stops left empty
// are taken from the preset.
type TrainRequest struct {
	Label            string           `json:"label"`
	Type             domain.TrainType `json:"type,omitempty"`
	Velocity         float64          `json:"velocity"`
	DepartureStation string           `json:"departure_station"`
	DepartureTime    float64          `json:"departure_time"`
	Stops            []domain.Stop    `json:"stops"`
}

// toScenario converts the request into a domain.Scenario.
// Returns domain.ErrValidation for an empty network or an unknown preset type.
func (req ComputeRequest) toScenario() (domain.Scenario, error) {
	if len(req.Network) == 0 {
		return domain.Scenario{}, fmt.Errorf("%w: network must contain at least one station", domain.ErrValidation)
	}
	sc := domain.Scenario{Network: domain.NewNetwork(req.Network)}
	for _, tr := range req.Trains {
		run := domain.TrainRun{
			Label:    tr.Label,
			Type:     tr.Type,
			Velocity: tr.Velocity,
			Timetable: domain.Timetable{
				Stops:            tr.Stops,
				DepartureStation: tr.DepartureStation,
				DepartureTime:    tr.DepartureTime,
			},
		}
		if tr.Type != "" {
			tp, ok := scenario.ForType(tr.Type)
			if !ok {
				return domain.Scenario{}, fmt.Errorf("%w: train %q: unknown type %q", domain.ErrValidation, tr.Label, tr.Type)
			}
			preset := tp.Train(tr.Label, tr.DepartureTime)
			if run.Velocity == 0 {
				run.Velocity = preset.Velocity
			}
			if run.Timetable.DepartureStation == "" {
				run.Timetable.DepartureStation = preset.Timetable.DepartureStation
			}
			if len(run.Timetable.Stops) == 0 {
				run.Timetable.Stops = preset.Timetable.Stops
			}
		}
		sc.Trains = append(sc.Trains, run)
	}
	return sc, nil
}

// computeTrajectories handles POST /trajectories: an ad-hoc network and
// timetable set. Trains that fail are listed under "failures" and do not
// fail the request.
func (s *Server) computeTrajectories(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			s.writeError(w, r, err)
			return
		}
		badRequest(w, "malformed request body: "+err.Error())
		return
	}

	sc, err := req.toScenario()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.scenarios.Compute(r.Context(), sc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeTrajectories(w, r, "trajectories", res)
}
