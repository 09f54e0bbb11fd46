package domain

import "time"

// WeekWindow возвращает границы недели понедельник-воскресенье,
// содержащей момент t: [понедельник 00:00, следующий понедельник 00:00)
// Граница полуоткрытая, чтобы сравнения не зависели от миллисекунд
func WeekWindow(t time.Time) (start, end time.Time) {
	weekday := int(t.Weekday())
	// time.Sunday == 0, а неделя салона начинается с понедельника
	if weekday == 0 {
		weekday = 7
	}

	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -(weekday - 1))
	end = start.AddDate(0, 0, 7)
	return start, end
}

// SameWeek проверяет, что два момента попадают в одну неделю понедельник-воскресенье
func SameWeek(a, b time.Time) bool {
	aStart, _ := WeekWindow(a)
	bStart, _ := WeekWindow(b)
	return aStart.Equal(bStart)
}
