package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	SpecialistID int64     // ID мастера
	Date         time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа с полной сеткой слотов дня
type Response struct {
	SpecialistID int64     // ID мастера
	Date         time.Time // Дата, на которую запрашивались слоты
	Closed       bool      // true, если день отмечен нерабочим
	Slots        []Slot    // Полная сетка: 20 слотов с признаком доступности
}

// Slot модель временного слота
// Сетка возвращается целиком: занятые и прошедшие слоты помечаются
// Available=false, а не выбрасываются, чтобы UI отрисовал их неактивными
type Slot struct {
	Time      types.TimeString // Время начала слота, например "10:00"
	Available bool             // Можно ли начать запись в этот слот
}
