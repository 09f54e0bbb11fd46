package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBookingCodeTaken возвращается при коллизии кода записи
	// Код генерируется случайно; при конфликте уникального индекса
	// вызывающий код генерирует новый код и повторяет вставку
	ErrBookingCodeTaken = errors.New("appointment.repository: booking code already taken")

	// ErrDuplicateWeekApproved возвращается, когда вставка approved-записи
	// нарушила уникальный индекс (телефон, мастер, неделя)
	// Сигнал конкурентной гонки: вызывающий код понижает статус до pending
	ErrDuplicateWeekApproved = errors.New("appointment.repository: approved appointment already exists for phone+specialist+week")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
