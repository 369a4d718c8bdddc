// Package model contains core data types for the project.
package model

import "fmt"

// WorkoutCode is the short type code sent by a sensor block.
type WorkoutCode string

const (
	Swimming      WorkoutCode = "SWM" // Swimming workout.
	Running       WorkoutCode = "RUN" // Running workout.
	SportsWalking WorkoutCode = "WLK" // Sports walking workout.
)

// Package is a raw sensor record: a workout code plus positional values.
type Package struct {
	Code WorkoutCode `json:"type" yaml:"type"` // Workout code.
	Data []float64   `json:"data" yaml:"data"` // Positional values, order depends on Code.
}

// InfoMessage is the computed summary of a single workout.
type InfoMessage struct {
	TrainingType string  `json:"training_type"` // Workout type name.
	Duration     float64 `json:"duration"`      // Hours.
	Distance     float64 `json:"distance"`      // Kilometers.
	Speed        float64 `json:"speed"`         // Mean speed, km/h.
	Calories     float64 `json:"calories"`      // Spent kilocalories.
}

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message renders the summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
