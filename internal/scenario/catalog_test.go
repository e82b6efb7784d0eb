package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/scenario"
)

func departures(sc domain.Scenario) map[string]float64 {
	out := make(map[string]float64, len(sc.Trains))
	for _, tr := range sc.Trains {
		out[tr.Label] = tr.Timetable.DepartureTime
	}
	return out
}

func labels(sc domain.Scenario) []string {
	out := make([]string, len(sc.Trains))
	for i, tr := range sc.Trains {
		out[i] = tr.Label
	}
	return out
}

func TestCatalog_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, sc := range scenario.Catalog() {
		assert.False(t, seen[sc.Name], "duplicate scenario %q", sc.Name)
		seen[sc.Name] = true
		assert.NotEmpty(t, sc.Description, sc.Name)
	}
	assert.Len(t, seen, 4)
}

// TestCatalog_EveryStationIsOnTheNetwork catches typos in the templates and
// the Victoria station list.
func TestCatalog_EveryStationIsOnTheNetwork(t *testing.T) {
	for _, sc := range scenario.Catalog() {
		for _, tr := range sc.Trains {
			_, err := sc.Network.Position(tr.Timetable.DepartureStation)
			require.NoError(t, err, "%s/%s departure", sc.Name, tr.Label)
			for _, stop := range tr.Timetable.Stops {
				_, err := sc.Network.Position(stop.Station)
				require.NoError(t, err, "%s/%s stop %s", sc.Name, tr.Label, stop.Station)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	sc, err := scenario.Lookup("victoria")
	require.NoError(t, err)
	assert.Equal(t, "victoria", sc.Name)

	_, err = scenario.Lookup("northern")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityNetwork(t *testing.T) {
	n := scenario.ActivityNetwork(scenario.ActivitySpacing)

	g, err := n.Position("G")
	require.NoError(t, err)
	assert.Equal(t, 30.0, g)
	assert.Equal(t, 7, n.Len())
}

func TestActivityEven(t *testing.T) {
	sc := scenario.ActivityEven()

	assert.Equal(t, map[string]float64{
		"Express 1": 0, "Local 1": 5, "Express 2": 30,
		"Local 2": 35, "Freight 2": 46, "Express start": 60,
	}, departures(sc))
}

func TestActivityEvenExtra_InsertsAfterLocal1(t *testing.T) {
	sc := scenario.ActivityEvenExtra()

	assert.Equal(t, []string{"Express 1", "Local 1", "Local (extra)", "Express 2", "Local 2", "Freight 2", "Express start"}, labels(sc))
	assert.Equal(t, 12.5, sc.Trains[2].Timetable.DepartureTime)
	assert.Equal(t, domain.TrainTypeLocal, sc.Trains[2].Type)
}

func TestActivityGrouped(t *testing.T) {
	sc := scenario.ActivityGrouped()

	assert.Equal(t, map[string]float64{
		"Express 1": 0, "Express 2": 12, "Freight": 17,
		"Local 1": 23, "Local 2": 30.5, "Local 3": 38, "Local 4": 45.5,
		"Express start": 60,
	}, departures(sc))
}

func TestVictoria(t *testing.T) {
	sc := scenario.Victoria()

	require.Len(t, sc.Trains, 15)
	assert.Equal(t, 16, sc.Network.Len())
	for i, tr := range sc.Trains {
		assert.Equal(t, float64(2*i), tr.Timetable.DepartureTime, tr.Label)
		assert.Equal(t, 50.0, tr.Velocity)
		assert.Equal(t, "Walthamstow Central", tr.Timetable.DepartureStation)
		require.Len(t, tr.Timetable.Stops, 16)
		assert.Equal(t, "Walthamstow Central", tr.Timetable.Stops[0].Station)
		assert.Equal(t, "Brixton", tr.Timetable.Stops[15].Station)
	}
	assert.Equal(t, "Metro 14", sc.Trains[14].Label)
}

func TestVictoriaNetwork_StationsInLineOrder(t *testing.T) {
	stations := scenario.VictoriaNetwork().Stations()

	assert.Equal(t, "Walthamstow Central", stations[0].Name)
	assert.Equal(t, "Brixton", stations[len(stations)-1].Name)
	for i := 1; i < len(stations); i++ {
		assert.Greater(t, stations[i].KM, stations[i-1].KM)
	}
}
