package workout

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// formulaSet is the per-kind function table. Nil entries fall back to the
// base formulas, except calories which every concrete kind must provide.
type formulaSet struct {
	distance  func(Kind, Record) float64
	meanSpeed func(Kind, Record) float64
	calories  func(Kind, Record) (float64, error)
}

var formulas = map[Kind]formulaSet{
	Generic: {
		calories: baseCalories,
	},
	Running: {
		calories: noErr(runningCalories),
	},
	Walking: {
		calories: noErr(walkingCalories),
	},
	Swimming: {
		distance:  swimmingDistance,
		meanSpeed: swimmingMeanSpeed,
		calories:  noErr(swimmingCalories),
	},
}

func formulasFor(k Kind) formulaSet {
	fs := formulas[k]
	if fs.distance == nil {
		fs.distance = baseDistance
	}
	if fs.meanSpeed == nil {
		fs.meanSpeed = baseMeanSpeed
	}
	if fs.calories == nil {
		fs.calories = baseCalories
	}
	return fs
}

func noErr(f func(Kind, Record) float64) func(Kind, Record) (float64, error) {
	return func(k Kind, r Record) (float64, error) {
		return f(k, r), nil
	}
}

// baseDistance returns distance in km
func baseDistance(k Kind, r Record) float64 {
	return float64(r.actions) * k.StepLength() / mInKm
}

// baseMeanSpeed returns mean speed in km/h
func baseMeanSpeed(k Kind, r Record) float64 {
	return baseDistance(k, r) / r.duration
}

func baseCalories(Kind, Record) (float64, error) {
	return 0, ErrNotImplemented
}

func runningCalories(_ Kind, r Record) float64 {
	return (runningCaloriesMeanSpeedMultiplier*float64(r.actions)*lenStep/mInKm/r.duration +
		runningCaloriesMeanSpeedShift) * r.weight / mInKm * r.duration * minInH
}

func walkingCalories(k Kind, r Record) float64 {
	speedMs := baseMeanSpeed(k, r) * kmhInMsec
	return (walkingCaloriesWeightMultiplier*r.weight +
		(speedMs*speedMs/(r.height/cmInM))*walkingSpeedHeightMultiplier*r.weight) *
		r.duration * minInH
}

// swimmingDistance counts strokes, not pool lengths
func swimmingDistance(_ Kind, r Record) float64 {
	return float64(r.actions) * swimmingLenStep / mInKm
}

func swimmingMeanSpeed(_ Kind, r Record) float64 {
	return r.lengthPool * float64(r.countPool) / mInKm / r.duration
}

func swimmingCalories(k Kind, r Record) float64 {
	return (swimmingMeanSpeed(k, r) + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * r.weight * r.duration
}
