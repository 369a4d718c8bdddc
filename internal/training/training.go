// Package training implements the workout types and their statistics.
package training

import "github.com/and161185/fitness-tracker/model"

const (
	LenStep         = 0.65 // Step length for running and walking, meters.
	SwimmingLenStep = 1.38 // Stroke length for swimming, meters.
	MInKm           = 1000 // Meters in a kilometer.
	MinInH          = 60   // Minutes in an hour.
)

// Workout is implemented by every workout type.
type Workout interface {
	// Name is the workout type name shown in the report.
	Name() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns spent kilocalories.
	SpentCalories() float64
}

var (
	_ Workout = (*Running)(nil)
	_ Workout = (*SportsWalking)(nil)
	_ Workout = (*Swimming)(nil)
)

// training holds the readings shared by all workout types.
type training struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func newTraining(action int, duration, weight, lenStep float64) training {
	return training{action: action, duration: duration, weight: weight, lenStep: lenStep}
}

func (t training) Duration() float64 {
	return t.duration
}

func (t training) Distance() float64 {
	return float64(t.action) * t.lenStep / MInKm
}

func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

func (t training) durationMinutes() float64 {
	return t.duration * MinInH
}

// ShowTrainingInfo builds the summary of a workout.
func ShowTrainingInfo(w Workout) model.InfoMessage {
	return model.InfoMessage{
		TrainingType: w.Name(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}
