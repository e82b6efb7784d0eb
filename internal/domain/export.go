package domain

// ExportRow is a single row of the tabular export: one row per sample,
// with the train label repeated for every sample of that train.
//
// Time is rounded to two decimal places and Distance to a whole kilometre.
type ExportRow struct {
	Train    string  `msgpack:"train" json:"train"`
	Time     float64 `msgpack:"time" json:"time"`
	Distance int64   `msgpack:"distance" json:"distance"`
}
