package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/export"
	"github.com/cxd309/stem-train-planning/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// trajectoryParams are the query parameters shared by every endpoint that
// returns a trajectory set.
type trajectoryParams struct {
	Format *string
	Train  *string
}

func bindTrajectoryParams(q url.Values) (trajectoryParams, error) {
	var p trajectoryParams
	if err := runtime.BindQueryParameter("form", true, false, "format", q, &p.Format); err != nil {
		return p, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "train", q, &p.Train); err != nil {
		return p, err
	}
	return p, nil
}

// FailureBody describes one train that produced no trajectory.
type FailureBody struct {
	Train   string `json:"train"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TrajectoriesBody is the JSON form of a computed scenario.
type TrajectoriesBody struct {
	Scenario     string               `json:"scenario,omitempty"`
	Trajectories domain.TrajectorySet `json:"trajectories"`
	Failures     []FailureBody        `json:"failures"`
}

func failureBodies(fs []domain.TrainFailure) []FailureBody {
	out := make([]FailureBody, 0, len(fs))
	for _, f := range fs {
		_, code := classify(f.Err)
		out = append(out, FailureBody{Train: f.Label, Code: code, Message: f.Err.Error()})
	}
	return out
}

// writeTrajectories encodes res in the requested format. CSV and msgpack
// carry only the successful trains; JSON also lists failures.
func (s *Server) writeTrajectories(w http.ResponseWriter, r *http.Request, filename string, res domain.Result) {
	params, err := bindTrajectoryParams(r.URL.Query())
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	format, err := export.ParseFormat(deref(params.Format))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	set := res.Trajectories
	if params.Train != nil {
		if set, err = set.Filter(*params.Train); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	if format == export.FormatJSON {
		writeJSON(w, http.StatusOK, TrajectoriesBody{
			Scenario:     res.Scenario,
			Trajectories: set,
			Failures:     failureBodies(res.Failures),
		})
		return
	}

	rows, err := service.ExportRows(set)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if format == export.FormatCSV {
		err = export.WriteCSV(&buf, rows)
	} else {
		err = export.WriteMsgpack(&buf, rows)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+"."+string(format)))
	_, _ = w.Write(buf.Bytes())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
