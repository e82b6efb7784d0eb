// Package scenario builds the preset train patterns and the named example
// scenarios. Everything is constructed on each call; nothing is shared.
package scenario

import "github.com/cxd309/stem-train-planning/internal/domain"

// Template is a reusable calling pattern for one class of train.
type Template struct {
	Type     domain.TrainType
	Velocity float64
	Origin   string
	Stops    domain.Route
}

// Train returns a TrainRun for this template leaving its origin at departure.
// The template's stops are copied so runs never share a backing array.
func (tp Template) Train(label string, departure float64) domain.TrainRun {
	stops := make(domain.Route, len(tp.Stops))
	copy(stops, tp.Stops)
	return domain.TrainRun{
		Label: label,
		Type:  tp.Type,
		Timetable: domain.Timetable{
			Stops:            stops,
			DepartureStation: tp.Origin,
			DepartureTime:    departure,
		},
		Velocity: tp.Velocity,
	}
}

// Express calls only at D, halfway along the A-G line.
func Express() Template {
	const dwell = 7.0
	return Template{
		Type:     domain.TrainTypeExpress,
		Velocity: 120,
		Origin:   "A",
		Stops: domain.Route{
			{Station: "D", Dwell: dwell},
			{Station: "G", Dwell: 0},
		},
	}
}

// Local calls at every station from B to G.
func Local() Template {
	const dwell = 2.5
	return Template{
		Type:     domain.TrainTypeLocal,
		Velocity: 80,
		Origin:   "A",
		Stops: domain.Route{
			{Station: "B", Dwell: dwell},
			{Station: "C", Dwell: dwell},
			{Station: "D", Dwell: dwell},
			{Station: "E", Dwell: dwell},
			{Station: "F", Dwell: dwell},
			{Station: "G", Dwell: 0},
		},
	}
}

// Freight runs A to G without stopping.
func Freight() Template {
	return Template{
		Type:     domain.TrainTypeFreight,
		Velocity: 60,
		Origin:   "A",
		Stops: domain.Route{
			{Station: "G", Dwell: 0},
		},
	}
}

// ForType returns the template for a preset train type.
func ForType(t domain.TrainType) (Template, bool) {
	switch t {
	case domain.TrainTypeExpress:
		return Express(), true
	case domain.TrainTypeLocal:
		return Local(), true
	case domain.TrainTypeFreight:
		return Freight(), true
	}
	return Template{}, false
}
