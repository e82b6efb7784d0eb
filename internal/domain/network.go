// Package domain contains the core data types for the train graph planner.
// Units are fixed across the package: positions in kilometres, times in
// minutes, velocities in km/h.
package domain

import (
	"cmp"
	"maps"
	"slices"
)

// Network maps station identifiers to their position along a single line,
// in kilometres from an arbitrary origin. The zero value is an empty network.
//
// A Network is immutable after construction. Insertion order carries no
// meaning; use Stations for a coordinate-ordered view.
type Network struct {
	positions map[string]float64
}

// StationPosition is one entry of a Network.
type StationPosition struct {
	Name string  `json:"name"`
	KM   float64 `json:"km"`
}

// NewNetwork returns a Network holding a copy of positions.
func NewNetwork(positions map[string]float64) Network {
	return Network{positions: maps.Clone(positions)}
}

// UniformNetwork places the k-th label at k * spacing kilometres.
func UniformNetwork(spacing float64, labels ...string) Network {
	positions := make(map[string]float64, len(labels))
	for k, label := range labels {
		positions[label] = float64(k) * spacing
	}
	return Network{positions: positions}
}

// Position returns the coordinate of station.
// Returns *UnknownStationError if the station is not part of the network.
func (n Network) Position(station string) (float64, error) {
	km, ok := n.positions[station]
	if !ok {
		return 0, &UnknownStationError{Station: station}
	}
	return km, nil
}

// Len returns the number of stations.
func (n Network) Len() int {
	return len(n.positions)
}

// Stations returns every station sorted by coordinate ascending.
// Stations sharing a coordinate are ordered by name so the result is stable.
func (n Network) Stations() []StationPosition {
	out := make([]StationPosition, 0, len(n.positions))
	for name, km := range n.positions {
		out = append(out, StationPosition{Name: name, KM: km})
	}
	slices.SortFunc(out, func(a, b StationPosition) int {
		if c := cmp.Compare(a.KM, b.KM); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
