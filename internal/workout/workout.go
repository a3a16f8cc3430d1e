// Package workout computes distance, mean speed and calories for the
// supported training kinds and renders the per-workout summary message.
package workout

import "fmt"

// Workout is a Record bound to the formula set of its kind.
// The zero value is a Generic workout whose calories are not implemented.
type Workout struct {
	kind   Kind
	record Record
}

// Build dispatches a sensor package to the matching workout kind
func Build(code string, fields []float64) (Workout, error) {
	kind, err := Lookup(code)
	if err != nil {
		return Workout{}, err
	}

	record, err := NewRecord(kind, fields)
	if err != nil {
		return Workout{}, fmt.Errorf("building %s workout: %w", code, err)
	}

	return Workout{kind: kind, record: record}, nil
}

// Kind returns the workout kind
func (w Workout) Kind() Kind { return w.kind }

// Record returns the underlying measurements
func (w Workout) Record() Record { return w.record }

// Distance returns the distance covered in km
func (w Workout) Distance() float64 {
	return formulasFor(w.kind).distance(w.kind, w.record)
}

// MeanSpeed returns the average speed over the whole duration in km/h
func (w Workout) MeanSpeed() float64 {
	return formulasFor(w.kind).meanSpeed(w.kind, w.record)
}

// Calories returns the energy spent in kcal. It returns ErrNotImplemented
// for a Generic workout.
func (w Workout) Calories() (float64, error) {
	return formulasFor(w.kind).calories(w.kind, w.record)
}

// Summary computes all metrics. No Summary is returned if any metric fails.
func (w Workout) Summary() (Summary, error) {
	calories, err := w.Calories()
	if err != nil {
		return Summary{}, fmt.Errorf("computing %s calories: %w", w.kind, err)
	}

	return Summary{
		Label:     w.kind.String(),
		Duration:  w.record.duration,
		Distance:  w.Distance(),
		MeanSpeed: w.MeanSpeed(),
		Calories:  calories,
	}, nil
}
