package get_available_slots

import "errors"

var (
	// ErrSpecialistNotFound возвращается, когда мастер не найден
	ErrSpecialistNotFound = errors.New("get_available_slots: specialist not found")

	// ErrSpecialistInactive возвращается, когда мастер отключён от новых записей
	ErrSpecialistInactive = errors.New("get_available_slots: specialist is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
