package group_services

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на группировку выбранных услуг
type Request struct {
	ServiceIDs []int64 // Выбранные услуги в порядке выбора клиента
}

// Response модель ответа со списком групп
type Response struct {
	Groups []Group // Группы в порядке построения
}

// Group группа услуг, которую может выполнить один мастер за один визит
type Group struct {
	Services            []domain.Service    // Услуги группы в исходном порядке выбора
	PossibleSpecialists []domain.Specialist // Мастера, умеющие выполнить каждую услугу группы
	TotalDuration       int                 // Суммарная длительность группы в минутах
	TotalPrice          float64             // Суммарная стоимость группы
	NoSpecialist        bool                // true для группы-остатка, которую никто не умеет выполнить
}
