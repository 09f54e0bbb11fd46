package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует запрос и возвращает очищенное имя
// и нормализованный телефон
func validateRequest(req *Request) (name string, phone string, err error) {
	name = strings.TrimSpace(req.CustomerName)
	if len([]rune(name)) < domain.MinCustomerNameLength {
		return "", "", fmt.Errorf("%w: customer name must be at least %d characters",
			ErrInvalidName, domain.MinCustomerNameLength)
	}
	if len([]rune(name)) > domain.MaxCustomerNameLength {
		return "", "", fmt.Errorf("%w: customer name is too long", ErrInvalidName)
	}

	phone = domain.NormalizePhone(req.CustomerPhone)
	if !domain.PhoneHasDigits(phone) {
		return "", "", fmt.Errorf("%w: customer phone must contain digits", ErrInvalidPhone)
	}
	if len(phone) > domain.MaxPhoneLength {
		return "", "", fmt.Errorf("%w: customer phone is too long", ErrInvalidPhone)
	}

	if len(req.Groups) == 0 {
		return "", "", fmt.Errorf("%w: at least one group is required", ErrInvalidInput)
	}

	for i, group := range req.Groups {
		if err := validateGroup(i, &group); err != nil {
			return "", "", err
		}
	}

	return name, phone, nil
}

// validateGroup валидирует выбор клиента для одной группы
func validateGroup(index int, group *GroupInput) error {
	if len(group.ServiceIDs) == 0 {
		return fmt.Errorf("%w: group %d has no services", ErrInvalidInput, index)
	}
	for _, id := range group.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: group %d has invalid serviceID", ErrInvalidInput, index)
		}
	}

	if group.SpecialistID <= 0 {
		return fmt.Errorf("%w: group %d has no specialist", ErrInvalidInput, index)
	}

	if group.Date.IsZero() {
		return fmt.Errorf("%w: group %d has no date", ErrInvalidInput, index)
	}

	if group.Time.IsZero() {
		return fmt.Errorf("%w: group %d has no time", ErrInvalidInput, index)
	}
	if err := group.Time.Validate(); err != nil {
		return fmt.Errorf("%w: group %d has invalid time: %v", ErrInvalidInput, index, err)
	}

	return nil
}
