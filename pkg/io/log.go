package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/assortwire/pkg/rewire"
)

// logColumns is the CSV header written by [WriteLogCSV].
var logColumns = []string{
	"name", "iteration", "time", "r", "target_r", "sample_size",
	"rewired", "edges_rewired", "duplicate_edges", "self_edges",
	"existing_edges", "preserved", "method", "phase", "summary",
}

// WriteLog encodes records as an indented JSON array.
func WriteLog(records []rewire.Record, w io.Writer) error {
	if records == nil {
		records = []rewire.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode log: %w", err)
	}
	return nil
}

// WriteLogCSV writes records as CSV with a header row. Elapsed time is in
// seconds; an undefined coefficient is an empty cell.
func WriteLogCSV(records []rewire.Record, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(logColumns); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Name,
			strconv.Itoa(r.Iteration),
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', -1, 64),
			formatR(r.R),
			strconv.FormatFloat(r.TargetR, 'f', -1, 64),
			strconv.Itoa(r.SampleSize),
			strconv.Itoa(r.Rewired),
			strconv.Itoa(r.TotalRewired),
			strconv.FormatFloat(r.Duplicate, 'f', -1, 64),
			strconv.Itoa(r.Self),
			strconv.Itoa(r.Existing),
			strconv.FormatBool(r.Preserved),
			r.Method,
			string(r.Phase),
			strconv.FormatBool(r.Summary),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write log row %d: %w", r.Iteration, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportLog writes records to path as CSV when the extension is ".csv" and
// as JSON otherwise.
func ExportLog(records []rewire.Record, path string) error {
	return exportFile(path, func(w io.Writer) error {
		if strings.HasSuffix(strings.ToLower(path), ".csv") {
			return WriteLogCSV(records, w)
		}
		return WriteLog(records, w)
	})
}

func formatR(r float64) string {
	if math.IsNaN(r) {
		return ""
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
