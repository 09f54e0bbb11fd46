package group_services

import "errors"

var (
	// ErrServiceNotFound возвращается, когда выбранная услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("group_services: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("group_services: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("group_services: internal error")
)
