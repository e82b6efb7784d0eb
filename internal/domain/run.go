package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run is a persisted computation of a scenario.
// Trajectories is only populated when a single run is fetched.
type Run struct {
	ID           uuid.UUID     `json:"id"`
	Scenario     string        `json:"scenario"`
	Trains       int           `json:"trains"`
	CreatedAt    time.Time     `json:"created_at"`
	Trajectories TrajectorySet `json:"trajectories"`
}
