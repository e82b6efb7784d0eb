package domain

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Sample is a train's location (km) at a point in time (minutes).
type Sample struct {
	Time     float64 `json:"time"`
	Location float64 `json:"location"`
}

// Trajectory is the time-ordered list of samples describing one journey.
// Times are non-decreasing.
type Trajectory []Sample

// TrajectorySet maps train labels to trajectories. Labels keep their
// insertion order, which is the order used for chart legends and exports.
// The zero value is ready to use.
type TrajectorySet struct {
	m *orderedmap.OrderedMap
}

// NewTrajectorySet returns an empty set.
func NewTrajectorySet() TrajectorySet {
	return TrajectorySet{m: orderedmap.New()}
}

// Set stores t under label. Re-setting an existing label keeps its position.
func (s *TrajectorySet) Set(label string, t Trajectory) {
	if s.m == nil {
		s.m = orderedmap.New()
	}
	s.m.Set(label, t)
}

// Get returns the trajectory stored under label.
func (s TrajectorySet) Get(label string) (Trajectory, bool) {
	if s.m == nil {
		return nil, false
	}
	v, ok := s.m.Get(label)
	if !ok {
		return nil, false
	}
	return v.(Trajectory), true
}

// Labels returns the train labels in insertion order.
func (s TrajectorySet) Labels() []string {
	if s.m == nil {
		return nil
	}
	return s.m.Keys()
}

// Len returns the number of trains in the set.
func (s TrajectorySet) Len() int {
	return len(s.Labels())
}

// Filter returns a new set holding only label, or ErrNotFound.
func (s TrajectorySet) Filter(label string) (TrajectorySet, error) {
	t, ok := s.Get(label)
	if !ok {
		return TrajectorySet{}, fmt.Errorf("train %q: %w", label, ErrNotFound)
	}
	out := NewTrajectorySet()
	out.Set(label, t)
	return out, nil
}

// MarshalJSON encodes the set as a JSON object whose keys follow insertion order.
func (s TrajectorySet) MarshalJSON() ([]byte, error) {
	if s.m == nil {
		return []byte("{}"), nil
	}
	return s.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object of label to samples, preserving key order.
func (s *TrajectorySet) UnmarshalJSON(data []byte) error {
	keys := orderedmap.New()
	if err := keys.UnmarshalJSON(data); err != nil {
		return err
	}
	var values map[string]Trajectory
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewTrajectorySet()
	for _, label := range keys.Keys() {
		s.Set(label, values[label])
	}
	return nil
}
