package training

const (
	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming workout.
type Swimming struct {
	training
	lengthPool float64
	countPool  float64
}

// NewSwimming creates a swimming workout. lengthPool is in meters, countPool is
// the number of pool lengths swum.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) *Swimming {
	return &Swimming{
		training:   newTraining(action, duration, weight, SwimmingLenStep),
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (s *Swimming) Name() string { return "Swimming" }

// MeanSpeed is computed from the pool laps, not from strokes.
func (s *Swimming) MeanSpeed() float64 {
	return s.lengthPool * s.countPool / MInKm / s.duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * s.weight
}
