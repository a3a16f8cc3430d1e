package workout

import "fmt"

// Summary is the computed snapshot of one workout
type Summary struct {
	Label     string
	Duration  float64 // hours
	Distance  float64 // km
	MeanSpeed float64 // km/h
	Calories  float64 // kcal
}

const messageFormat = "Workout type: %s; " +
	"Duration: %.3f h; " +
	"Distance: %.3f km; " +
	"Mean speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Message renders the summary line. Values are rounded to three decimals
// for display only.
func (s Summary) Message() string {
	return fmt.Sprintf(messageFormat, s.Label, s.Duration, s.Distance, s.MeanSpeed, s.Calories)
}

// String implements fmt.Stringer
func (s Summary) String() string {
	return s.Message()
}
