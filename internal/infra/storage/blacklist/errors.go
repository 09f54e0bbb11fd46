package blacklist

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись чёрного списка не найдена
	ErrEntryNotFound = errors.New("blacklist.repository: entry not found")

	// ErrEntryExists возвращается, когда телефон уже в чёрном списке
	ErrEntryExists = errors.New("blacklist.repository: phone already blacklisted")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blacklist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blacklist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blacklist.repository: failed to scan row")
)
