package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		w    Workout
		want float64
	}{
		{"running", NewRunning(15000, 1, 75), 15000 * LenStep / MInKm},
		{"walking", NewSportsWalking(9000, 1, 75, 180), 9000 * LenStep / MInKm},
		{"swimming", NewSwimming(720, 1, 80, 25, 40), 720 * SwimmingLenStep / MInKm},
		{"no_actions", NewRunning(0, 1, 75), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, tt.w.Distance(), delta)
		})
	}
}

func TestMeanSpeed(t *testing.T) {
	tests := []struct {
		name string
		w    Workout
		want float64
	}{
		{"running", NewRunning(9000, 1, 75), 5.85},
		{"running_half_hour", NewRunning(9000, 0.5, 75), 11.7},
		{"walking", NewSportsWalking(9000, 2, 75, 180), 2.925},
		{"swimming_uses_pool", NewSwimming(720, 1, 80, 25, 40), 1.0},
		{"swimming_two_hours", NewSwimming(720, 2, 80, 50, 40), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, tt.w.MeanSpeed(), delta)
		})
	}
}

func TestSpentCalories(t *testing.T) {
	tests := []struct {
		name string
		w    Workout
		want float64
	}{
		{"running", NewRunning(9000, 1, 75), 383.85},
		{"walking", NewSportsWalking(9000, 1, 75, 180), 157.5},
		{"swimming", NewSwimming(720, 1, 80, 25, 40), 336.0},
		// speed 13 km/h, 169 / 100 floors to 1
		{"walking_fast_short", NewSportsWalking(20000, 1, 80, 100), (0.035*80 + 1*0.029*80) * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, tt.w.SpentCalories(), 1e-6)
		})
	}
}

func TestName(t *testing.T) {
	require.Equal(t, "Running", NewRunning(1, 1, 1).Name())
	require.Equal(t, "SportsWalking", NewSportsWalking(1, 1, 1, 1).Name())
	require.Equal(t, "Swimming", NewSwimming(1, 1, 1, 1, 1).Name())
}

func TestShowTrainingInfo(t *testing.T) {
	info := ShowTrainingInfo(NewSwimming(720, 1, 80, 25, 40))

	require.Equal(t, "Swimming", info.TrainingType)
	require.InDelta(t, 1.0, info.Duration, delta)
	require.InDelta(t, 0.9936, info.Distance, delta)
	require.InDelta(t, 1.0, info.Speed, delta)
	require.InDelta(t, 336.0, info.Calories, delta)
}

func TestZeroDurationDoesNotPanic(t *testing.T) {
	r := NewRunning(9000, 0, 75)
	require.NotPanics(t, func() { _ = ShowTrainingInfo(r) })
	require.True(t, math.IsInf(r.MeanSpeed(), 1))
}
