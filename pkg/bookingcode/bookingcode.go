package bookingcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet 32 символа без неоднозначных I, O, 0 и 1
// Код показывается клиенту и диктуется по телефону, поэтому символы,
// которые легко перепутать, исключены
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length длина кода записи
const Length = 10

// Generate генерирует случайный код записи из алфавита Alphabet
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("bookingcode: failed to read random bytes: %w", err)
	}

	var sb strings.Builder
	sb.Grow(Length)
	for _, b := range buf {
		// len(Alphabet) == 32, поэтому взятие по модулю не искажает распределение
		sb.WriteByte(Alphabet[int(b)%len(Alphabet)])
	}

	return sb.String(), nil
}

// Generator генератор кодов записи
// Пустая структура, чтобы подставлять генератор через интерфейс в тестах
type Generator struct{}

// Generate генерирует случайный код записи
func (g *Generator) Generate() (string, error) {
	return Generate()
}

// Normalize приводит введённый пользователем код к канонической форме
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid проверяет, что строка похожа на код записи
func IsValid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
