package rewire

import (
	"encoding/json"
	"math"
)

// Assortativity is undefined (NaN) for degree-regular or empty graphs, which
// JSON cannot represent. Records and results encode it as null instead.

func nullable(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func fromNullable(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

type recordAlias Record

type recordJSON struct {
	recordAlias
	R *float64 `json:"r"`
}

// MarshalJSON encodes an undefined coefficient as null.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{recordAlias: recordAlias(r), R: nullable(r.R)})
}

// UnmarshalJSON decodes a null coefficient as NaN.
func (r *Record) UnmarshalJSON(data []byte) error {
	var v recordJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Record(v.recordAlias)
	r.R = fromNullable(v.R)
	return nil
}

type resultAlias Result

type resultJSON struct {
	resultAlias
	Initial *float64 `json:"initial_r"`
	Final   *float64 `json:"final_r"`
}

// MarshalJSON encodes undefined coefficients as null.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		resultAlias: resultAlias(r),
		Initial:     nullable(r.Initial),
		Final:       nullable(r.Final),
	})
}

// UnmarshalJSON decodes null coefficients as NaN.
func (r *Result) UnmarshalJSON(data []byte) error {
	var v resultJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Result(v.resultAlias)
	r.Initial = fromNullable(v.Initial)
	r.Final = fromNullable(v.Final)
	return nil
}
