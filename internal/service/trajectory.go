// Package service contains the trajectory engine and the services built on it.
// Services validate input, run the engine, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"fmt"
	"math"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// minutesPerHour converts a km / (km/h) quotient into minutes.
const minutesPerHour = 60.0

// ComputeTrajectory turns a timetable into a piecewise-linear movement curve.
//
// The first sample is (DepartureTime, position of DepartureStation). Each stop
// then contributes two samples: the arrival, after travelling the distance at
// velocity, and the ready-to-depart sample Dwell minutes later at the same
// location. A zero dwell therefore yields two identical samples.
//
// Returns *domain.InvalidVelocityError when velocity is not a finite value > 0,
// *domain.UnknownStationError when any station is missing from network, and
// domain.ErrValidation for a negative or non-finite dwell or departure time.
// No partial trajectory is returned on error.
func ComputeTrajectory(tt domain.Timetable, velocity float64, network domain.Network) (domain.Trajectory, error) {
	if !(velocity > 0) || math.IsInf(velocity, 1) {
		return nil, &domain.InvalidVelocityError{Velocity: velocity}
	}
	if err := validateTimetable(tt); err != nil {
		return nil, err
	}

	location, err := network.Position(tt.DepartureStation)
	if err != nil {
		return nil, fmt.Errorf("departure: %w", err)
	}
	now := tt.DepartureTime

	movement := make(domain.Trajectory, 0, 1+2*len(tt.Stops))
	movement = append(movement, domain.Sample{Time: now, Location: location})

	for i, stop := range tt.Stops {
		dest, err := network.Position(stop.Station)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}

		distance := math.Abs(dest - location)
		now += distance / velocity * minutesPerHour
		location = dest
		movement = append(movement, domain.Sample{Time: now, Location: location})

		now += stop.Dwell
		movement = append(movement, domain.Sample{Time: now, Location: location})
	}

	return movement, nil
}

// validateTimetable rejects values that would break the non-decreasing time
// ordering of the output.
func validateTimetable(tt domain.Timetable) error {
	if math.IsNaN(tt.DepartureTime) || math.IsInf(tt.DepartureTime, 0) {
		return fmt.Errorf("%w: departure time must be finite", domain.ErrValidation)
	}
	for i, stop := range tt.Stops {
		if !(stop.Dwell >= 0) || math.IsInf(stop.Dwell, 1) {
			return fmt.Errorf("%w: stop %d (%s): dwell must be a finite value >= 0", domain.ErrValidation, i, stop.Station)
		}
	}
	return nil
}
