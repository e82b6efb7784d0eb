package domain

// Stop is one call in a train's calling pattern.
// Dwell is the time in minutes spent at the station; 0 means the train
// passes through without stopping.
type Stop struct {
	Station string  `json:"station"`
	Dwell   float64 `json:"dwell"`
}

// Route is the ordered list of stops a train visits after leaving its
// departure station. Stops are visited strictly in order.
type Route []Stop

// Timetable is the complete schedule for one train.
// DepartureStation need not appear in Stops.
type Timetable struct {
	Stops            Route   `json:"stops"`
	DepartureStation string  `json:"departure_station"`
	DepartureTime    float64 `json:"departure_time"`
}

// TrainType names a preset calling pattern.
type TrainType string

const (
	TrainTypeExpress TrainType = "express"
	TrainTypeLocal   TrainType = "local"
	TrainTypeFreight TrainType = "freight"
)

// TrainRun is one train within a scenario: its display label, timetable, and
// constant cruising velocity in km/h.
type TrainRun struct {
	Label     string    `json:"label"`
	Type      TrainType `json:"type,omitempty"`
	Timetable Timetable `json:"timetable"`
	Velocity  float64   `json:"velocity"`
}
