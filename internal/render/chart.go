// Package render draws train graphs: distance against time, one line per
// train, with station names on a secondary axis.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// Options controls the rendered image.
type Options struct {
	Title  string
	Width  int
	Height int
	// MajorTick and MinorTick are the time-axis grid spacings in minutes.
	MajorTick float64
	MinorTick float64
}

// DefaultOptions matches a 12x6 inch figure at 100 dpi with 5 minute labels
// and a 1 minute grid.
func DefaultOptions() Options {
	return Options{
		Title:     "Train Graph",
		Width:     1200,
		Height:    600,
		MajorTick: 5,
		MinorTick: 1,
	}
}

// withDefaults fills unset or non-positive fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if !(o.MajorTick > 0) {
		o.MajorTick = d.MajorTick
	}
	if !(o.MinorTick > 0) || o.MinorTick > o.MajorTick {
		o.MinorTick = o.MajorTick
	}
	return o
}

var (
	majorGrid = chart.Style{StrokeColor: drawing.ColorFromHex("808080"), StrokeWidth: 0.8}
	minorGrid = chart.Style{StrokeColor: drawing.ColorFromHex("808080"), StrokeWidth: 0.4, StrokeDashArray: []float64{4, 2}}
)

// TrainGraph renders set over network as a PNG to w.
// Trains are drawn and listed in the legend in set order.
//
// Returns domain.ErrEmptyTrajectory if the set is empty or any train has no
// samples, and domain.ErrValidation if the network has no stations.
func TrainGraph(w io.Writer, set domain.TrajectorySet, network domain.Network, opts Options) error {
	opts = opts.withDefaults()
	stations := network.Stations()
	if len(stations) == 0 {
		return fmt.Errorf("render.TrainGraph: %w: network has no stations", domain.ErrValidation)
	}
	labels := set.Labels()
	if len(labels) == 0 {
		return fmt.Errorf("render.TrainGraph: %w: no trains", domain.ErrEmptyTrajectory)
	}

	tMin, tMax := math.Inf(1), math.Inf(-1)
	series := make([]chart.Series, 0, len(labels))
	for _, label := range labels {
		t, _ := set.Get(label)
		if len(t) == 0 {
			return fmt.Errorf("render.TrainGraph: %w: train %q", domain.ErrEmptyTrajectory, label)
		}
		xs := make([]float64, len(t))
		ys := make([]float64, len(t))
		for i, s := range t {
			xs[i], ys[i] = s.Time, s.Location
			tMin, tMax = math.Min(tMin, s.Time), math.Max(tMax, s.Time)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    label,
			Style:   chart.Style{StrokeWidth: 2},
			XValues: xs,
			YValues: ys,
		})
	}

	kmMin, kmMax := stations[0].KM, stations[len(stations)-1].KM
	pad := math.Max((kmMax-kmMin)*0.025, 0.5)
	kmMin, kmMax = kmMin-pad, kmMax+pad

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Time (minutes)",
			Ticks:          timeTicks(tMin, tMax, opts.MajorTick),
			GridLines:      timeGrid(tMin, tMax, opts.MajorTick, opts.MinorTick),
			GridMajorStyle: majorGrid,
			GridMinorStyle: minorGrid,
		},
		// go-chart takes the secondary range from the primary ticks, so both
		// axes span exactly [kmMin, kmMax].
		YAxis: chart.YAxis{
			Name:  "Distance (km)",
			Ticks: distanceTicks(kmMin, kmMax),
		},
		YAxisSecondary: chart.YAxis{
			Ticks: stationTicks(stations),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render.TrainGraph: %w", err)
	}
	return nil
}

// timeBounds widens [tMin, tMax] to whole multiples of step, at least one step wide.
func timeBounds(tMin, tMax, step float64) (float64, float64) {
	lo := math.Floor(tMin/step) * step
	hi := math.Ceil(tMax/step) * step
	if hi <= lo {
		hi = lo + step
	}
	return lo, hi
}

// timeTicks labels every step minutes across the data.
func timeTicks(tMin, tMax, step float64) []chart.Tick {
	lo, hi := timeBounds(tMin, tMax, step)
	var ticks []chart.Tick
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}
	return ticks
}

// timeGrid returns a minor line every minor minutes and a major line every major minutes.
func timeGrid(tMin, tMax, major, minor float64) []chart.GridLine {
	lo, hi := timeBounds(tMin, tMax, major)
	perMajor := int(math.Round(major / minor))
	var lines []chart.GridLine
	for i := 0; ; i++ {
		v := lo + float64(i)*minor
		if v > hi {
			break
		}
		lines = append(lines, chart.GridLine{Value: v, IsMinor: perMajor > 0 && i%perMajor != 0})
	}
	return lines
}

// distanceTicks labels round km values inside [kmMin, kmMax]. Unlabelled
// ticks at both bounds fix the axis range to the padded extent.
func distanceTicks(kmMin, kmMax float64) []chart.Tick {
	step := niceStep((kmMax - kmMin) / 8)
	ticks := []chart.Tick{{Value: kmMin}}
	for i := math.Ceil(kmMin / step); i*step < kmMax; i++ {
		v := i * step
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		if v > kmMin {
			ticks = append(ticks, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 10, 64)})
		}
	}
	return append(ticks, chart.Tick{Value: kmMax})
}

// niceStep rounds raw up to 1, 2, or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if !(raw > 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

// stationTicks puts each station name at its coordinate.
func stationTicks(stations []domain.StationPosition) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(stations))
	for _, s := range stations {
		ticks = append(ticks, chart.Tick{Value: s.KM, Label: s.Name})
	}
	return ticks
}
