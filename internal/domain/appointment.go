package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusApproved AppointmentStatus = "approved"
	StatusRejected AppointmentStatus = "rejected"
)

// Appointment represents a persisted salon appointment
// Одна запись = одна группа услуг, выполняемая одним мастером в один визит
type Appointment struct {
	ID            int64
	CustomerName  string
	CustomerPhone string // Нормализованный телефон (цифры, скобки, пробелы)

	// Denormalized data for history
	ServiceTitle   string // Названия услуг группы через запятую
	SpecialistID   int64
	SpecialistName string

	StartTime       time.Time        // Локальное гражданское время начала (без UTC-смещения)
	AppointmentTime types.TimeString // Время начала "HH:MM" (дублирует StartTime для отображения)
	DurationMinutes int              // Сумма длительностей услуг группы
	Status          AppointmentStatus
	BookingCode     string // 10 символов из алфавита BookingCodeAlphabet

	CreatedAt time.Time
}

// IsBlocking returns true if the appointment occupies its time slots
// Отклонённые записи не блокируют слоты
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// EndTime возвращает время окончания записи
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps проверяет пересечение записи с интервалом [start, end)
// Граничащие интервалы пересечением не считаются
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndTime()) && end.After(a.StartTime)
}

// AppointmentsFilter фильтр для получения записей (админ-панель)
type AppointmentsFilter struct {
	SpecialistID *int64              // Фильтр по мастеру (опционально)
	StartDate    *time.Time          // Начало периода по start_time (опционально)
	EndDate      *time.Time          // Конец периода по start_time (опционально)
	Phone        *string             // Фильтр по нормализованному телефону (опционально)
	StatusIn     []AppointmentStatus // Фильтр по статусам (опционально, пустой = все)
}
