package workout

import "fmt"

// Kind identifies which formula set applies to a workout
type Kind int

const (
	// Generic is the unspecialised base. Build never returns it.
	Generic Kind = iota
	Running
	Walking
	Swimming
)

// Sensor kind codes
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

const (
	lenStep         = 0.65
	swimmingLenStep = 1.38
	mInKm           = 1000
	minInH          = 60
)

// profile holds the constants a kind resolves to
type profile struct {
	code       string
	label      string
	stepLength float64
	fields     []string // expected field names, in input order
}

var baseFields = []string{"action", "duration", "weight"}

var profiles = map[Kind]profile{
	Generic: {
		label:      "Training",
		stepLength: lenStep,
		fields:     baseFields,
	},
	Running: {
		code:       CodeRunning,
		label:      "Running",
		stepLength: lenStep,
		fields:     baseFields,
	},
	Walking: {
		code:       CodeWalking,
		label:      "SportsWalking",
		stepLength: lenStep,
		fields:     []string{"action", "duration", "weight", "height"},
	},
	Swimming: {
		code:       CodeSwimming,
		label:      "Swimming",
		stepLength: swimmingLenStep,
		fields:     []string{"action", "duration", "weight", "length_pool", "count_pool"},
	},
}

var kindsByCode = map[string]Kind{
	CodeSwimming: Swimming,
	CodeRunning:  Running,
	CodeWalking:  Walking,
}

// Lookup resolves a sensor kind code
func Lookup(code string) (Kind, error) {
	k, ok := kindsByCode[code]
	if !ok {
		return Generic, fmt.Errorf("%w: %q", ErrUnknownKind, code)
	}
	return k, nil
}

// Kinds returns the dispatchable kinds in a stable order
func Kinds() []Kind {
	return []Kind{Running, Walking, Swimming}
}

// String returns the display label, which is also used in summaries
func (k Kind) String() string {
	if p, ok := profiles[k]; ok {
		return p.label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the sensor code for k, or "" for Generic
func (k Kind) Code() string {
	return profiles[k].code
}

// Arity returns how many numeric fields a package of this kind carries
func (k Kind) Arity() int {
	return len(profiles[k].fields)
}

// StepLength returns the assumed distance per action in meters
func (k Kind) StepLength() float64 {
	return profiles[k].stepLength
}

// FieldNames returns the expected input field names in order
func (k Kind) FieldNames() []string {
	names := profiles[k].fields
	out := make([]string, len(names))
	copy(out, names)
	return out
}
