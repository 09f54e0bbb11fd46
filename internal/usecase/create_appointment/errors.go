package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустая группа, неизвестная услуга в группе, некорректное время и т.п.)
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidName возвращается, когда имя клиента короче минимума
	ErrInvalidName = errors.New("create_appointment: invalid customer name")

	// ErrInvalidPhone возвращается, когда после нормализации телефон пуст
	ErrInvalidPhone = errors.New("create_appointment: invalid customer phone")

	// ErrBlocked возвращается, когда телефон находится в чёрном списке
	// Терминальная ошибка: ни одна запись не создаётся
	ErrBlocked = errors.New("create_appointment: phone is blacklisted")

	// ErrRateLimited возвращается при превышении лимита записей за 24 часа
	ErrRateLimited = errors.New("create_appointment: rate limit exceeded")

	// ErrServiceNotFound возвращается, когда услуга группы не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSpecialistNotFound возвращается, когда мастер группы не найден
	ErrSpecialistNotFound = errors.New("create_appointment: specialist not found")

	// ErrSpecialistInactive возвращается, когда мастер отключён от новых записей
	ErrSpecialistInactive = errors.New("create_appointment: specialist is not active")

	// ErrSalonClosed возвращается, когда дата группы отмечена нерабочим днём
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrPersistenceFailure возвращается, когда хранилище не смогло сохранить записи
	// Ошибка всегда поднимается наружу: синтезировать фиктивный успех нельзя
	ErrPersistenceFailure = errors.New("create_appointment: failed to persist appointments")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
