package domain

import "time"

// BlacklistEntry запись чёрного списка
// Проверяется только в момент создания записи, существующие записи не трогает
type BlacklistEntry struct {
	ID        int64
	Name      string
	Phone     string // Нормализованный телефон
	CreatedAt time.Time
}

// ClosedDay нерабочий день салона
// День с такой записью полностью недоступен для бронирования у всех мастеров
type ClosedDay struct {
	ID        int64
	Date      time.Time // Календарная дата без времени
	Reason    string
	CreatedAt time.Time
}
