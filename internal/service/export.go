package service

import (
	"fmt"
	"math"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// ExportRows flattens set into one row per sample, trains in set order.
// Time is rounded to 2 decimal places and Distance to the nearest whole
// kilometre, both with halves going to the even neighbour.
//
// Returns domain.ErrEmptyTrajectory if the set is empty or any train has no samples.
func ExportRows(set domain.TrajectorySet) ([]domain.ExportRow, error) {
	labels := set.Labels()
	if len(labels) == 0 {
		return nil, fmt.Errorf("service.ExportRows: %w: no trains", domain.ErrEmptyTrajectory)
	}

	var rows []domain.ExportRow
	for _, label := range labels {
		t, _ := set.Get(label)
		if len(t) == 0 {
			return nil, fmt.Errorf("service.ExportRows: %w: train %q", domain.ErrEmptyTrajectory, label)
		}
		for _, s := range t {
			rows = append(rows, domain.ExportRow{
				Train:    label,
				Time:     roundTime(s.Time),
				Distance: int64(math.RoundToEven(s.Location)),
			})
		}
	}
	return rows, nil
}

// roundTime rounds minutes to two decimal places, halves to even.
func roundTime(minutes float64) float64 {
	return math.RoundToEven(minutes*100) / 100
}
