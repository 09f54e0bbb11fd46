package domain

// Salon working hours
// Салон работает 09:00 - 19:00, последний бронируемый слот начинается в 18:30
const (
	SalonOpenTime       = "09:00"
	SalonLastSlot       = "18:30"
	SlotDurationMinutes = 30
	SlotsPerDay         = 20
)

// Booking code constants
const (
	// BookingCodeAlphabet 32 символа без неоднозначных I, O, 0, 1
	BookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	BookingCodeLength   = 10
)

// Business validation constants
const (
	MinCustomerNameLength = 3
	MaxCustomerNameLength = 100
	MaxPhoneLength        = 20
	MaxReasonLength       = 200
)

// Admission defaults
const (
	// DefaultRateLimitPerDay максимум записей с одного телефона за последние 24 часа
	// В разных инсталляциях встречаются значения 3 и 5, настраивается конфигом
	DefaultRateLimitPerDay = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, при которых запись занимает слоты
// Используется при подсчёте занятости сетки и при проверке дубля недели
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
}
