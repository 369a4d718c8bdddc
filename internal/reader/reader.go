// Package reader turns raw sensor packages into workouts.
package reader

import (
	"errors"
	"fmt"
	"math"

	"github.com/and161185/fitness-tracker/internal/training"
	"github.com/and161185/fitness-tracker/model"
)

var ErrUnknownWorkoutType = errors.New("unknown workout type")
var ErrInvalidArgs = errors.New("invalid workout data")

type constructor struct {
	arity int
	build func(data []float64) (training.Workout, error)
}

var constructors = map[model.WorkoutCode]constructor{
	model.Swimming: {arity: 5, build: func(d []float64) (training.Workout, error) {
		action, err := actionCount(d[0])
		if err != nil {
			return nil, err
		}
		return training.NewSwimming(action, d[1], d[2], d[3], d[4]), nil
	}},
	model.Running: {arity: 3, build: func(d []float64) (training.Workout, error) {
		action, err := actionCount(d[0])
		if err != nil {
			return nil, err
		}
		return training.NewRunning(action, d[1], d[2]), nil
	}},
	model.SportsWalking: {arity: 4, build: func(d []float64) (training.Workout, error) {
		action, err := actionCount(d[0])
		if err != nil {
			return nil, err
		}
		if !positive(d[3]) {
			return nil, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidArgs, d[3])
		}
		return training.NewSportsWalking(action, d[1], d[2], d[3]), nil
	}},
}

// Codes returns the known workout codes in a stable order.
func Codes() []model.WorkoutCode {
	return []model.WorkoutCode{model.Swimming, model.Running, model.SportsWalking}
}

// ReadPackage builds the workout for code from positional sensor data.
func ReadPackage(code model.WorkoutCode, data []float64) (training.Workout, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, fmt.Errorf("%w %q, available types: %v", ErrUnknownWorkoutType, code, Codes())
	}

	if len(data) != c.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidArgs, code, c.arity, len(data))
	}

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %d of %s is not finite: %v", ErrInvalidArgs, i, code, v)
		}
	}

	if !positive(data[1]) {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidArgs, data[1])
	}

	return c.build(data)
}

// maxActionCount is the largest count a float64 holds exactly, so the int
// conversion below never rounds or overflows.
const maxActionCount = 1 << 53

func actionCount(v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || v > maxActionCount {
		return 0, fmt.Errorf("%w: action count should be a non-negative integer, got %v", ErrInvalidArgs, v)
	}
	return int(v), nil
}

// positive is false for NaN as well.
func positive(v float64) bool {
	return v > 0
}
