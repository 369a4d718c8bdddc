package training

import "math"

const (
	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029
)

// SportsWalking is a sports walking workout.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking creates a walking workout. Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{training: newTraining(action, duration, weight, LenStep), height: height}
}

func (s *SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories keeps the floored speed^2 / height term of the reference formula,
// so for ordinary speeds and heights only the weight term contributes.
func (s *SportsWalking) SpentCalories() float64 {
	speed := s.MeanSpeed()
	return (walkCaloriesWeightMultiplier*s.weight +
		math.Floor(speed*speed/s.height)*walkCaloriesSpeedMultiplier*s.weight) *
		s.durationMinutes()
}
