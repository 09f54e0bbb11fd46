package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Slot временной слот сетки расписания с признаком доступности
// Сетка всегда возвращается целиком: занятые и прошедшие слоты помечаются
// Available=false, а не выбрасываются, чтобы UI мог отрисовать их неактивными
type Slot struct {
	Time      types.TimeString
	Available bool
}

// SlotGrid возвращает полную получасовую сетку рабочего дня салона
// 20 слотов с SalonOpenTime по SalonLastSlot включительно, по возрастанию
func SlotGrid() []types.TimeString {
	grid := make([]types.TimeString, 0, SlotsPerDay)
	current := types.MustTimeString(SalonOpenTime)
	last := types.MustTimeString(SalonLastSlot)

	for {
		grid = append(grid, current)
		if !current.IsBefore(last) {
			break
		}
		next, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return grid
}
