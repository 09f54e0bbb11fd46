package salon

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда мастер не найден
	ErrSpecialistNotFound = errors.New("specialist not found")

	// ErrBlacklistEntryNotFound возвращается, когда запись чёрного списка не найдена
	ErrBlacklistEntryNotFound = errors.New("blacklist entry not found")

	// ErrBlacklistEntryExists возвращается, когда телефон уже в чёрном списке
	ErrBlacklistEntryExists = errors.New("blacklist entry already exists")

	// ErrClosedDayNotFound возвращается, когда нерабочий день не найден
	ErrClosedDayNotFound = errors.New("closed day not found")

	// ErrClosedDayExists возвращается, когда дата уже отмечена нерабочей
	ErrClosedDayExists = errors.New("closed day already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
