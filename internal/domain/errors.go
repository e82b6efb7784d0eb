package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a named scenario or a stored run does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule
// (e.g. negative dwell, duplicate train label).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnknownStation is the sentinel wrapped by UnknownStationError.
var ErrUnknownStation = errors.New("unknown station")

// ErrInvalidVelocity is the sentinel wrapped by InvalidVelocityError.
var ErrInvalidVelocity = errors.New("invalid velocity")

// ErrEmptyTrajectory is returned by the render and export sinks when given
// a trajectory set with no trains, or a train with no samples.
var ErrEmptyTrajectory = errors.New("empty trajectory")

// UnknownStationError reports a station identifier that is absent from the Network.
// It matches ErrUnknownStation with errors.Is.
type UnknownStationError struct {
	Station string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown station %q", e.Station)
}

func (e *UnknownStationError) Unwrap() error { return ErrUnknownStation }

// InvalidVelocityError reports a velocity that is not a finite value > 0.
// It matches ErrInvalidVelocity with errors.Is.
type InvalidVelocityError struct {
	Velocity float64
}

func (e *InvalidVelocityError) Error() string {
	return fmt.Sprintf("invalid velocity %g km/h: must be greater than zero", e.Velocity)
}

func (e *InvalidVelocityError) Unwrap() error { return ErrInvalidVelocity }
