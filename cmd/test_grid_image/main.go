package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/controller/render"
	"github.com/Freeeeeet/meetbot/internal/service"
)

func main() {
	// Создаем тестовые данные
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Начинаем с понедельника текущей недели
	for startDate.Weekday() != time.Monday {
		startDate = startDate.AddDate(0, 0, -1)
	}

	window := availability.TimeOfDayRange{
		Start: availability.TimeOfDay{Hour: 9},
		End:   availability.TimeOfDay{Hour: 18},
	}

	// Тестовая занятость на неделю
	busy := []availability.Interval{
		// Понедельник
		{Start: startDate.Add(10 * time.Hour), End: startDate.Add(11 * time.Hour)},
		{Start: startDate.Add(11*time.Hour + 30*time.Minute), End: startDate.Add(12*time.Hour + 30*time.Minute)},
		// Вторник
		{Start: startDate.AddDate(0, 0, 1).Add(9 * time.Hour), End: startDate.AddDate(0, 0, 1).Add(13 * time.Hour)},
		// Среда полностью занята
		{Start: startDate.AddDate(0, 0, 2).Add(9 * time.Hour), End: startDate.AddDate(0, 0, 2).Add(18 * time.Hour)},
		// Пятница
		{Start: startDate.AddDate(0, 0, 4).Add(15 * time.Hour), End: startDate.AddDate(0, 0, 4).Add(16 * time.Hour)},
	}

	days := availability.ListDays(startDate, startDate.AddDate(0, 0, 6))
	dayAvailability := make([]service.DayAvailability, 0, len(days))
	for _, day := range days {
		windowStart := window.Start.On(day)
		windowEnd := window.End.On(day)
		merged := availability.MergeBusy(busy, windowStart, windowEnd)
		dayAvailability = append(dayAvailability, service.DayAvailability{
			Day:  day,
			Busy: merged,
			Free: availability.FreeIntervals(windowStart, windowEnd, merged),
		})
	}

	// Генерируем изображение
	imageData, err := render.AvailabilityGrid(dayAvailability, window)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "grid.png"
	err = os.WriteFile(filename, imageData, 0644)
	if err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Период: %s - %s\n", startDate.Format("02.01.2006"), startDate.AddDate(0, 0, 6).Format("02.01.2006"))
}
