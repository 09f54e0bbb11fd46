package closedday

import "errors"

var (
	// ErrClosedDayNotFound возвращается, когда нерабочий день не найден
	ErrClosedDayNotFound = errors.New("closedday.repository: closed day not found")

	// ErrClosedDayExists возвращается, когда дата уже отмечена нерабочей
	ErrClosedDayExists = errors.New("closedday.repository: date already marked as closed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closedday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("closedday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("closedday.repository: failed to scan row")
)
