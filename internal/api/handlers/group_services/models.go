package group_services

import (
	groupServices "github.com/m04kA/SMC-SalonService/internal/usecase/group_services"
)

// GroupServicesRequest HTTP request model
type GroupServicesRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
}

// GroupedService услуга в составе группы
type GroupedService struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// GroupSpecialist мастер, способный выполнить группу целиком
type GroupSpecialist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ServiceGroup группа услуг одного визита
type ServiceGroup struct {
	Services            []GroupedService  `json:"services"`
	PossibleSpecialists []GroupSpecialist `json:"possibleSpecialists"`
	TotalDuration       int               `json:"totalDuration"`
	TotalPrice          float64           `json:"totalPrice"`
	NoSpecialist        bool              `json:"noSpecialist"`
}

// GroupServicesResponse HTTP response model
type GroupServicesResponse struct {
	Groups []ServiceGroup `json:"groups"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GroupServicesRequest) ToUseCaseRequest() *groupServices.Request {
	return &groupServices.Request{
		ServiceIDs: r.ServiceIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *groupServices.Response) *GroupServicesResponse {
	groups := make([]ServiceGroup, len(resp.Groups))
	for i, g := range resp.Groups {
		group := ServiceGroup{
			Services:            make([]GroupedService, len(g.Services)),
			PossibleSpecialists: make([]GroupSpecialist, len(g.PossibleSpecialists)),
			TotalDuration:       g.TotalDuration,
			TotalPrice:          g.TotalPrice,
			NoSpecialist:        g.NoSpecialist,
		}

		for j, s := range g.Services {
			group.Services[j] = GroupedService{
				ID:              s.ID,
				Title:           s.Title,
				DurationMinutes: s.DurationMinutes,
				Price:           s.Price,
			}
		}

		for j, sp := range g.PossibleSpecialists {
			group.PossibleSpecialists[j] = GroupSpecialist{
				ID:   sp.ID,
				Name: sp.Name,
				Role: sp.Role,
			}
		}

		groups[i] = group
	}

	return &GroupServicesResponse{Groups: groups}
}
