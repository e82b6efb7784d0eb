package domain

// Scenario is a network plus the trains that run over it.
// It is plain data built at call time by whoever assembles it.
type Scenario struct {
	Name        string
	Description string
	Network     Network
	Trains      []TrainRun
}

// ScenarioSummary is the list view of a Scenario.
type ScenarioSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Trains      int    `json:"trains"`
}

// Summary returns the list view of sc.
func (sc Scenario) Summary() ScenarioSummary {
	return ScenarioSummary{Name: sc.Name, Description: sc.Description, Trains: len(sc.Trains)}
}

// TrainFailure records why one train in a scenario produced no trajectory.
type TrainFailure struct {
	Label string
	Err   error
}

// Result is the outcome of computing every train in a scenario.
// Trajectories holds the successful trains in scenario order; Failures holds
// the rest, also in scenario order.
type Result struct {
	Scenario     string
	Trajectories TrajectorySet
	Failures     []TrainFailure
}
