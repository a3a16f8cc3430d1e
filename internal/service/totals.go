package service

import (
	"gonum.org/v1/gonum/floats"

	"fitness-tracker/internal/workout"
)

// Totals aggregates the successful workouts of a session
type Totals struct {
	Count       int
	Duration    float64 // hours
	Distance    float64 // km
	Calories    float64 // kcal
	MeanSpeed   float64 // km/h, total distance over total duration
	MaxCalories float64
	ByKind      map[workout.Kind]int
}

// Totals computes aggregates over the successful results
func (s *Session) Totals() Totals {
	ok := s.Succeeded()
	t := Totals{
		Count:  len(ok),
		ByKind: make(map[workout.Kind]int),
	}
	if len(ok) == 0 {
		return t
	}

	durations := make([]float64, len(ok))
	distances := make([]float64, len(ok))
	calories := make([]float64, len(ok))
	for i, r := range ok {
		durations[i] = r.Summary.Duration
		distances[i] = r.Summary.Distance
		calories[i] = r.Summary.Calories
		t.ByKind[r.Workout.Kind()]++
	}

	t.Duration = floats.Sum(durations)
	t.Distance = floats.Sum(distances)
	t.Calories = floats.Sum(calories)
	t.MaxCalories = floats.Max(calories)
	if t.Duration > 0 {
		t.MeanSpeed = t.Distance / t.Duration
	}

	return t
}

// CalorieSeries returns calories per successful workout, in input order, for charts
func (s *Session) CalorieSeries() []float64 {
	ok := s.Succeeded()
	series := make([]float64, len(ok))
	for i, r := range ok {
		series[i] = r.Summary.Calories
	}
	return series
}
