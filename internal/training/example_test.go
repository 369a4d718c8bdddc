package training

import "fmt"

func ExampleShowTrainingInfo() {
	for _, w := range []Workout{
		NewSwimming(720, 1, 80, 25, 40),
		NewRunning(15000, 1, 75),
		NewSportsWalking(9000, 1, 75, 180),
	} {
		fmt.Println(ShowTrainingInfo(w).Message())
	}
	// Output:
	// Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.
	// Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.
	// Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.
}
