package workout

import (
	"fmt"
	"math"
)

// Record holds the raw sensor measurements for one workout.
// Fields that don't apply to the record's kind are zero.
type Record struct {
	actions    int
	duration   float64 // hours
	weight     float64 // kg
	height     float64 // cm, walking only
	lengthPool float64 // m, swimming only
	countPool  int     // swimming only
}

// Actions returns the step or stroke count
func (r Record) Actions() int { return r.actions }

// Duration returns the workout duration in hours
func (r Record) Duration() float64 { return r.duration }

// Weight returns the athlete weight in kg
func (r Record) Weight() float64 { return r.weight }

// Height returns the athlete height in cm
func (r Record) Height() float64 { return r.height }

// LengthPool returns the pool length in meters
func (r Record) LengthPool() float64 { return r.lengthPool }

// CountPool returns how many pool lengths were swum
func (r Record) CountPool() int { return r.countPool }

// maxCount bounds step, stroke and lap counts so they convert to int exactly
const maxCount = math.MaxInt32

func checkCount(name string, v float64) error {
	if v != math.Trunc(v) {
		return &FieldError{Field: name, Value: v, Reason: "must be a whole number"}
	}
	if v > maxCount {
		return &FieldError{Field: name, Value: v, Reason: "out of range"}
	}
	return nil
}

// NewRecord validates fields against the kind's layout and builds a Record
func NewRecord(kind Kind, fields []float64) (Record, error) {
	p, ok := profiles[kind]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	names := p.fields
	if len(fields) != len(names) {
		return Record{}, fmt.Errorf("%w: %s expects %d, got %d", ErrArity, kind, len(names), len(fields))
	}

	for i, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, &FieldError{Field: names[i], Value: v, Reason: "must be finite"}
		}
	}

	// action: whole number >= 0
	if fields[0] < 0 {
		return Record{}, &FieldError{Field: names[0], Value: fields[0], Reason: "must not be negative"}
	}
	if err := checkCount(names[0], fields[0]); err != nil {
		return Record{}, err
	}
	// everything after action must be positive
	for i := 1; i < len(fields); i++ {
		if fields[i] <= 0 {
			return Record{}, &FieldError{Field: names[i], Value: fields[i], Reason: "must be positive"}
		}
	}

	r := Record{
		actions:  int(fields[0]),
		duration: fields[1],
		weight:   fields[2],
	}

	switch kind {
	case Walking:
		r.height = fields[3]
	case Swimming:
		if err := checkCount(names[4], fields[4]); err != nil {
			return Record{}, err
		}
		r.lengthPool = fields[3]
		r.countPool = int(fields[4])
	}

	return r, nil
}
