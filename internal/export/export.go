// Package export encodes trajectory rows for download: CSV for spreadsheets
// and msgpack for compact machine consumption.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cxd309/stem-train-planning/internal/domain"
)

// Format selects an export encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatMsgpack Format = "msgpack"
)

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatMsgpack:
		return "application/vnd.msgpack"
	default:
		return "application/json"
	}
}

// ParseFormat accepts "", json, csv, and msgpack. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatCSV, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", domain.ErrValidation, s)
}

// Header is the first CSV record.
var Header = []string{"Train", "Time", "Distance"}

// WriteCSV writes Header followed by one record per row.
// Times are floats in their shortest decimal form, whole minutes keeping a
// trailing ".0" ("5.0", "12.5", "7.33").
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

func record(r domain.ExportRow) []string {
	return []string{
		r.Train,
		formatTime(r.Time),
		strconv.FormatInt(r.Distance, 10),
	}
}

func formatTime(minutes float64) string {
	s := strconv.FormatFloat(minutes, 'f', -1, 64)
	if minutes == math.Trunc(minutes) && !math.IsInf(minutes, 0) {
		s += ".0"
	}
	return s
}

// WriteMsgpack encodes rows as a msgpack array of {train, time, distance} maps.
func WriteMsgpack(w io.Writer, rows []domain.ExportRow) error {
	if err := msgpack.NewEncoder(w).Encode(rows); err != nil {
		return fmt.Errorf("export.WriteMsgpack: %w", err)
	}
	return nil
}

// ReadMsgpack decodes rows written by WriteMsgpack.
func ReadMsgpack(r io.Reader) ([]domain.ExportRow, error) {
	var rows []domain.ExportRow
	if err := msgpack.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("export.ReadMsgpack: %w", err)
	}
	return rows, nil
}
