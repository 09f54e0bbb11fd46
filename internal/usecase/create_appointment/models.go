package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// GroupInput выбор клиента для одной группы услуг
type GroupInput struct {
	ServiceIDs   []int64          // Услуги группы
	SpecialistID int64            // Выбранный мастер
	Date         time.Time        // Выбранная дата (без времени)
	Time         types.TimeString // Выбранное время начала, например "10:00"
}

// Request модель запроса на создание записей
// Одна отправка формы = одна Request, каждая группа становится одной записью
type Request struct {
	CustomerName  string       // Имя клиента (как введено, обрезается при валидации)
	CustomerPhone string       // Телефон клиента (нормализуется при валидации)
	Groups        []GroupInput // Группы услуг, минимум одна
}

// Response модель ответа: созданные записи в порядке групп запроса
type Response struct {
	Appointments []CreatedAppointment
}

// CreatedAppointment созданная запись
type CreatedAppointment struct {
	ID              int64
	ServiceTitle    string           // Названия услуг группы через запятую
	SpecialistID    int64
	SpecialistName  string
	StartTime       time.Time        // Локальное гражданское время начала
	AppointmentTime types.TimeString // Время начала "HH:MM"
	DurationMinutes int              // Сумма длительностей услуг группы
	TotalPrice      float64          // Суммарная стоимость услуг группы
	Status          string           // approved | pending
	BookingCode     string           // Код для самостоятельной проверки статуса
	CreatedAt       time.Time
}
