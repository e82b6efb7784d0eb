package scenario

import (
	"fmt"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// ActivitySpacing is the distance in km between adjacent activity stations.
const ActivitySpacing = 5.0

// ActivityStations are the stations of the uniform activity line, in order.
var ActivityStations = []string{"A", "B", "C", "D", "E", "F", "G"}

// ActivityNetwork returns the A-G line with stations every spacing km.
func ActivityNetwork(spacing float64) domain.Network {
	return domain.UniformNetwork(spacing, ActivityStations...)
}

// Catalog returns every named scenario, freshly built.
func Catalog() []domain.Scenario {
	return []domain.Scenario{
		ActivityEven(),
		ActivityEvenExtra(),
		ActivityGrouped(),
		Victoria(),
	}
}

// Lookup returns the named scenario from the catalog.
// Returns domain.ErrNotFound if no scenario has that name.
func Lookup(name string) (domain.Scenario, error) {
	for _, sc := range Catalog() {
		if sc.Name == name {
			return sc, nil
		}
	}
	return domain.Scenario{}, fmt.Errorf("scenario %q: %w", name, domain.ErrNotFound)
}

// ActivityEven spaces express and local departures evenly through the hour.
func ActivityEven() domain.Scenario {
	express, local, freight := Express(), Local(), Freight()
	return domain.Scenario{
		Name:        "activity-even",
		Description: "Even spacing of express and local services with one freight path",
		Network:     ActivityNetwork(ActivitySpacing),
		Trains: []domain.TrainRun{
			express.Train("Express 1", 0),
			local.Train("Local 1", 5),
			express.Train("Express 2", 30),
			local.Train("Local 2", 35),
			freight.Train("Freight 2", 46),
			express.Train("Express start", 60),
		},
	}
}

// ActivityEvenExtra is ActivityEven with an additional local at 12.5 minutes.
func ActivityEvenExtra() domain.Scenario {
	sc := ActivityEven()
	local := Local()
	trains := make([]domain.TrainRun, 0, len(sc.Trains)+1)
	trains = append(trains, sc.Trains[:2]...)
	trains = append(trains, local.Train("Local (extra)", 12.5))
	trains = append(trains, sc.Trains[2:]...)

	sc.Name = "activity-even-extra"
	sc.Description = "Even spacing with an extra local squeezed in behind Local 1"
	sc.Trains = trains
	return sc
}

// ActivityGrouped runs the fast trains first and then a flight of locals.
func ActivityGrouped() domain.Scenario {
	express, local, freight := Express(), Local(), Freight()
	const (
		firstLocal = 23.0
		headway    = 7.5
	)
	return domain.Scenario{
		Name:        "activity-grouped",
		Description: "Express and freight grouped ahead of a flight of locals",
		Network:     ActivityNetwork(ActivitySpacing),
		Trains: []domain.TrainRun{
			express.Train("Express 1", 0),
			express.Train("Express 2", 12),
			freight.Train("Freight", 17),
			local.Train("Local 1", firstLocal),
			local.Train("Local 2", firstLocal+headway),
			local.Train("Local 3", firstLocal+2*headway),
			local.Train("Local 4", firstLocal+3*headway),
			express.Train("Express start", 60),
		},
	}
}
