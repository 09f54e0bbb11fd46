package domain

import "strings"

// NormalizePhone нормализует телефон: остаются цифры, скобки и пробелы
// Та же нормализация применяется при создании записи и при добавлении
// в чёрный список, поэтому проверка чёрного списка — точное совпадение строк
func NormalizePhone(phone string) string {
	var sb strings.Builder
	sb.Grow(len(phone))

	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '(' || r == ')' || r == ' ' {
			sb.WriteRune(r)
		}
	}

	return strings.TrimSpace(sb.String())
}

// PhoneHasDigits проверяет, что нормализованный телефон содержит хотя бы одну цифру
func PhoneHasDigits(phone string) bool {
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
