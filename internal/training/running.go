package training

const (
	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20
)

// Running is a running workout.
type Running struct {
	training
}

// NewRunning creates a running workout.
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{training: newTraining(action, duration, weight, LenStep)}
}

func (r *Running) Name() string { return "Running" }

// SpentCalories returns (18 * speed - 20) * weight / 1000 * minutes.
func (r *Running) SpentCalories() float64 {
	return (runCaloriesSpeedMultiplier*r.MeanSpeed() - runCaloriesSpeedShift) *
		r.weight / MInKm * r.durationMinutes()
}
