package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// buildSlots строит полную сетку слотов дня с признаком доступности
// Слот доступен, если он не пересекается ни с одной блокирующей записью
// и (для сегодняшней даты) ещё не наступил
func buildSlots(
	date time.Time,
	appointments []*domain.Appointment,
	now time.Time,
) []Slot {
	grid := domain.SlotGrid()
	slots := make([]Slot, len(grid))

	today := isSameDay(date, now)
	currentTime := types.NewTimeString(now)

	for i, slotStart := range grid {
		available := true

		// Прошедшие (и текущий) слоты сегодняшнего дня недоступны:
		// запись на уже наступившее время не имеет смысла
		if today && !slotStart.IsAfter(currentTime) {
			available = false
		}

		if available && isSlotBusy(slotStart, date, appointments) {
			available = false
		}

		slots[i] = Slot{
			Time:      slotStart,
			Available: available,
		}
	}

	return slots
}

// closedDaySlots возвращает полностью недоступную сетку для нерабочего дня
// Сетка всё равно возвращается целиком, чтобы UI показал день с неактивными слотами
func closedDaySlots() []Slot {
	grid := domain.SlotGrid()
	slots := make([]Slot, len(grid))
	for i, slotStart := range grid {
		slots[i] = Slot{Time: slotStart, Available: false}
	}
	return slots
}

// isSlotBusy проверяет пересечение слота [start, start+30min) с записями
// Пересечением считается любое наложение интервалов, а не только вложение:
// услуга длиннее 30 минут блокирует все слоты, которые она накрывает
// Граничащие интервалы (конец записи == начало слота) пересечением не считаются
func isSlotBusy(slotStart types.TimeString, date time.Time, appointments []*domain.Appointment) bool {
	start, err := slotStart.OnDate(date)
	if err != nil {
		// Сетка строится из константных значений, сюда попадать не должны
		return false
	}
	end := start.Add(domain.SlotDurationMinutes * time.Minute)

	for _, apt := range appointments {
		// Отклонённые записи слоты не блокируют
		if !apt.IsBlocking() {
			continue
		}
		if apt.Overlaps(start, end) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
