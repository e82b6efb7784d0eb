package handler_test

import (
	"encoding/json"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/export"
)

// ---- GET /scenarios --------------------------------------------------------

func TestListScenarios_200(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []domain.ScenarioSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 4)
	assert.Equal(t, "activity-even", body[0].Name)
	assert.Equal(t, 6, body[0].Trains)
	assert.Equal(t, "victoria", body[3].Name)
}

// ---- GET /scenarios/{name}/trajectories ------------------------------------

func TestGetScenarioTrajectories_JSON(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios/activity-even/trajectories", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeTrajectories(t, rec)
	assert.Equal(t, "activity-even", body.Scenario)
	assert.Empty(t, body.Failures)
	assert.Equal(t, []string{"Express 1", "Local 1", "Express 2", "Local 2", "Freight 2", "Express start"}, body.Trajectories.Labels())

	express, ok := body.Trajectories.Get("Express 1")
	require.True(t, ok)
	assert.Equal(t, domain.Trajectory{
		{Time: 0, Location: 0},
		{Time: 7.5, Location: 15},
		{Time: 14.5, Location: 15},
		{Time: 22, Location: 30},
		{Time: 22, Location: 30},
	}, express)
}

func TestGetScenarioTrajectories_CSV(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios/activity-even/trajectories?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="activity-even.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Train,Time,Distance",
		"Express 1,0.0,0",
		"Express 1,7.5,15",
		"Express 1,14.5,15",
		"Express 1,22.0,30",
		"Express 1,22.0,30",
		"Local 1,5.0,0",
	}, lines[:7])
	assert.Len(t, lines, 1+44)
}

func TestGetScenarioTrajectories_Msgpack(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios/victoria/trajectories?format=msgpack", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.msgpack", rec.Header().Get("Content-Type"))
	rows, err := export.ReadMsgpack(rec.Body)
	require.NoError(t, err)
	assert.Len(t, rows, 15*33)
	assert.Equal(t, domain.ExportRow{Train: "Metro 0", Time: 0, Distance: 27}, rows[0])
}

func TestGetScenarioTrajectories_TrainFilter(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios/activity-even/trajectories?train=Freight%202", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeTrajectories(t, rec)
	assert.Equal(t, []string{"Freight 2"}, body.Trajectories.Labels())
	freight, _ := body.Trajectories.Get("Freight 2")
	assert.Equal(t, domain.Trajectory{
		{Time: 46, Location: 0},
		{Time: 76, Location: 30},
		{Time: 76, Location: 30},
	}, freight)
}

func TestGetScenarioTrajectories_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{name: "unknown scenario", target: "/scenarios/circle/trajectories", status: http.StatusNotFound, code: "not_found"},
		{name: "unknown train", target: "/scenarios/activity-even/trajectories?train=Nope", status: http.StatusNotFound, code: "not_found"},
		{name: "unknown format", target: "/scenarios/activity-even/trajectories?format=xml", status: http.StatusUnprocessableEntity, code: "validation_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newHTTPHandler(t, nil), http.MethodGet, tc.target, nil)

			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Code)
		})
	}
}

// ---- GET /scenarios/{name}/chart.png ---------------------------------------

func TestGetScenarioChart_PNG(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios/activity-grouped/chart.png", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestGetScenarioChart_NotFound(t *testing.T) {
	rec := do(t, newHTTPHandler(t, nil), http.MethodGet, "/scenarios/circle/chart.png", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}
