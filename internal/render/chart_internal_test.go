package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

func tickValues(ticks []chart.Tick) []float64 {
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = t.Value
	}
	return out
}

func TestTimeTicks_CoverDataOnWholeSteps(t *testing.T) {
	ticks := timeTicks(5, 76, 5)

	values := tickValues(ticks)
	assert.Equal(t, 5.0, values[0])
	assert.Equal(t, 80.0, values[len(values)-1])
	assert.Len(t, values, 16)
	assert.Equal(t, "80", ticks[len(ticks)-1].Label)
}

func TestTimeTicks_SingleInstant(t *testing.T) {
	assert.Equal(t, []float64{10, 15}, tickValues(timeTicks(10, 10, 5)))
}

func TestTimeGrid_MarksMinorLines(t *testing.T) {
	lines := timeGrid(0, 10, 5, 1)

	assert.Len(t, lines, 11)
	for i, l := range lines {
		assert.Equal(t, float64(i), l.Value)
		assert.Equal(t, i%5 != 0, l.IsMinor, "line %d", i)
	}
}

func TestStationTicks(t *testing.T) {
	stations := []domain.StationPosition{{Name: "A", KM: 0}, {Name: "B", KM: 5}}

	assert.Equal(t, []chart.Tick{
		{Value: 0, Label: "A"},
		{Value: 5, Label: "B"},
	}, stationTicks(stations))
}

// TestDistanceTicks_SpanPaddedRange checks the primary ticks start and end on
// the padded bounds, since they also set the station axis range.
func TestDistanceTicks_SpanPaddedRange(t *testing.T) {
	ticks := distanceTicks(-0.75, 30.75)

	assert.Equal(t, []chart.Tick{
		{Value: -0.75},
		{Value: 0, Label: "0"},
		{Value: 5, Label: "5"},
		{Value: 10, Label: "10"},
		{Value: 15, Label: "15"},
		{Value: 20, Label: "20"},
		{Value: 25, Label: "25"},
		{Value: 30, Label: "30"},
		{Value: 30.75},
	}, ticks)
}

func TestDistanceTicks_RealChainage(t *testing.T) {
	ticks := distanceTicks(26.8, 49.14)

	assert.Equal(t, 26.8, ticks[0].Value)
	assert.Equal(t, 49.14, ticks[len(ticks)-1].Value)
	assert.Equal(t, "30", ticks[1].Label)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i].Value, ticks[i-1].Value)
	}
}

func TestNiceStep(t *testing.T) {
	for raw, want := range map[float64]float64{0.3: 0.5, 1: 1, 2.79: 5, 3.9375: 5, 7: 10, 12: 20, 0: 1} {
		assert.Equal(t, want, niceStep(raw), "raw %v", raw)
	}
}

func TestOptions_withDefaults(t *testing.T) {
	got := Options{Width: -1, MajorTick: 10, MinorTick: 20}.withDefaults()

	assert.Equal(t, 1200, got.Width)
	assert.Equal(t, 600, got.Height)
	assert.Equal(t, 10.0, got.MajorTick)
	assert.Equal(t, 10.0, got.MinorTick)
}
