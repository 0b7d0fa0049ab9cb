package rewire

import (
	"slices"
	"time"
)

// Phase identifies which part of a run produced a record.
type Phase string

const (
	PhaseInitial     Phase = "initial"
	PhaseReconstruct Phase = "reconstruct"
	PhaseRepair      Phase = "repair"
	PhaseTune        Phase = "tune"
	PhaseSummary     Phase = "summary"
)

// Rejections tallies candidate edges refused by [ValidateCandidates].
// A duplicated pair contributes 0.5 from each of its two occurrences.
type Rejections struct {
	Duplicate float64 `json:"duplicate_edges"`
	Self      int     `json:"self_edges"`
	Existing  int     `json:"existing_edges"`
}

// Add accumulates other into r.
func (r *Rejections) Add(other Rejections) {
	r.Duplicate += other.Duplicate
	r.Self += other.Self
	r.Existing += other.Existing
}

// Total returns the number of rejected candidates.
func (r Rejections) Total() float64 {
	return r.Duplicate + float64(r.Self) + float64(r.Existing)
}

// Record is one entry of a run's log. Records are diagnostic: nothing in the
// engine reads them back to make decisions.
type Record struct {
	Name         string        `json:"name"`
	Iteration    int           `json:"iteration"`
	Elapsed      time.Duration `json:"elapsed"`
	R            float64       `json:"r"`
	TargetR      float64       `json:"target_r"`
	SampleSize   int           `json:"sample_size"`
	Rewired      int           `json:"rewired"`
	TotalRewired int           `json:"edges_rewired"`
	Rejections
	Preserved bool   `json:"preserved"`
	Method    string `json:"method"`
	Phase     Phase  `json:"phase"`
	Summary   bool   `json:"summary"`
}

// Log is an append-only sequence of records. Append numbers iterations and
// accumulates TotalRewired; records are never modified afterwards.
type Log struct {
	records []Record
}

// Append stamps rec with the next iteration number and the cumulative
// rewire count, then stores it.
func (l *Log) Append(rec Record) Record {
	rec.Iteration = len(l.records)
	rec.TotalRewired = rec.Rewired
	if n := len(l.records); n > 0 {
		rec.TotalRewired += l.records[n-1].TotalRewired
	}
	l.records = append(l.records, rec)
	return rec
}

// Records returns a copy of the stored records.
func (l *Log) Records() []Record { return slices.Clone(l.records) }

// Len returns the number of stored records.
func (l *Log) Len() int { return len(l.records) }

// Last returns the most recent record, or false if the log is empty.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

// runInfo carries the per-run fields copied onto every record.
type runInfo struct {
	Name       string
	Method     string
	Target     float64
	SampleSize int
}

func (ri runInfo) record(phase Phase) Record {
	return Record{
		Name:       ri.Name,
		TargetR:    ri.Target,
		SampleSize: ri.SampleSize,
		Method:     ri.Method,
		Phase:      phase,
		Preserved:  true,
	}
}
