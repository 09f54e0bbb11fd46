package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentGroup группа услуг, выполняемая одним мастером за один визит
// Эфемерная модель: создаётся группировщиком, заполняется клиентом по шагам
// мастера/даты/времени и превращается ровно в одну запись Appointment
type AppointmentGroup struct {
	Services            []Service    // Услуги группы (подмножество выбранных клиентом)
	PossibleSpecialists []Specialist // Мастера, умеющие выполнять КАЖДУЮ услугу группы

	// Выбор клиента, nil/zero пока шаг не пройден
	Specialist *Specialist
	Date       *time.Time
	Time       *types.TimeString
}

// TotalDuration возвращает суммарную длительность услуг группы в минутах
func (g *AppointmentGroup) TotalDuration() int {
	total := 0
	for _, s := range g.Services {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice возвращает суммарную стоимость услуг группы
func (g *AppointmentGroup) TotalPrice() float64 {
	total := 0.0
	for _, s := range g.Services {
		total += s.Price
	}
	return total
}

// ServiceTitle возвращает названия услуг группы через запятую
// Используется как денормализованное service_title записи
func (g *AppointmentGroup) ServiceTitle() string {
	title := ""
	for i, s := range g.Services {
		if i > 0 {
			title += ", "
		}
		title += s.Title
	}
	return title
}

// ServiceIDs возвращает идентификаторы услуг группы в исходном порядке
func (g *AppointmentGroup) ServiceIDs() []int64 {
	ids := make([]int64, len(g.Services))
	for i, s := range g.Services {
		ids[i] = s.ID
	}
	return ids
}
