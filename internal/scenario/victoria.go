package scenario

import (
	"fmt"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// victoriaLine lists Victoria line stations northbound to southbound with
// their chainage in km, from the railway codes underground distances table.
var victoriaLine = []domain.StationPosition{
	{Name: "Walthamstow Central", KM: 27.33},
	{Name: "Blackhorse Road", KM: 28.79},
	{Name: "Tottenham Hale", KM: 30.15},
	{Name: "Seven Sisters", KM: 31.19},
	{Name: "Finsbury Park", KM: 34.34},
	{Name: "Highbury and Islington", KM: 36.29},
	{Name: "Kings Cross St Pancras", KM: 38.72},
	{Name: "Euston", KM: 39.47},
	{Name: "Warren Street", KM: 40.22},
	{Name: "Oxford Circus", KM: 41.14},
	{Name: "Green Park", KM: 42.23},
	{Name: "Victoria", KM: 43.35},
	{Name: "Pimlico", KM: 44.57},
	{Name: "Vauxhall", KM: 45.37},
	{Name: "Stockwell", KM: 47.13},
	{Name: "Brixton", KM: 48.61},
}

const (
	victoriaTPH      = 30
	victoriaTrains   = 15
	victoriaVelocity = 50.0
	victoriaDwell    = 1.0
)

// VictoriaNetwork returns the Victoria line chainage.
func VictoriaNetwork() domain.Network {
	positions := make(map[string]float64, len(victoriaLine))
	for _, s := range victoriaLine {
		positions[s.Name] = s.KM
	}
	return domain.NewNetwork(positions)
}

// Victoria runs an all-stations metro service at 30 trains per hour.
// The route starts with the origin itself, so each train's first leg has
// zero length and the first dwell happens at Walthamstow Central.
func Victoria() domain.Scenario {
	route := make(domain.Route, 0, len(victoriaLine))
	for _, s := range victoriaLine {
		route = append(route, domain.Stop{Station: s.Name, Dwell: victoriaDwell})
	}
	origin := victoriaLine[0].Name
	headway := 60.0 / victoriaTPH

	tp := Template{Velocity: victoriaVelocity, Origin: origin, Stops: route}
	trains := make([]domain.TrainRun, 0, victoriaTrains)
	for i := range victoriaTrains {
		trains = append(trains, tp.Train(fmt.Sprintf("Metro %d", i), float64(i)*headway))
	}

	return domain.Scenario{
		Name:        "victoria",
		Description: "London Underground Victoria line, all stations at 30 trains per hour",
		Network:     VictoriaNetwork(),
		Trains:      trains,
	}
}
