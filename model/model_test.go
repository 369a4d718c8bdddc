package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInfoMessage_Message(t *testing.T) {
	tests := []struct {
		name string
		msg  InfoMessage
		want string
	}{
		{
			name: "swimming",
			msg:  InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "zero_values",
			msg:  InfoMessage{TrainingType: "Running"},
			want: "Тип тренировки: Running; Длительность: 0.000 ч.; Дистанция: 0.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
		{
			name: "large_values_keep_three_decimals",
			msg:  InfoMessage{TrainingType: "SportsWalking", Duration: 12.5, Distance: 123456.78912, Speed: 9876.54321, Calories: 1e6},
			want: "Тип тренировки: SportsWalking; Длительность: 12.500 ч.; Дистанция: 123456.789 км; Ср. скорость: 9876.543 км/ч; Потрачено ккал: 1000000.000.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.msg.Message())
		})
	}
}
