package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// AddBlacklistEntryRequest запрос на добавление телефона в чёрный список
type AddBlacklistEntryRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AddClosedDayRequest запрос на добавление нерабочего дня
type AddClosedDayRequest struct {
	Date   string `json:"date"` // "2026-03-16"
	Reason string `json:"reason,omitempty"`
}

// SetSpecialistActiveRequest запрос на включение/отключение мастера
type SetSpecialistActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// SpecialistResponse мастер салона
type SpecialistResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// CapabilityResponse пара (мастер, услуга)
type CapabilityResponse struct {
	SpecialistID int64 `json:"specialistId"`
	ServiceID    int64 `json:"serviceId"`
}

// CatalogResponse полный каталог для начальной загрузки мастера записи:
// услуги, активные мастера и их способности одним ответом
type CatalogResponse struct {
	Services     []ServiceResponse    `json:"services"`
	Specialists  []SpecialistResponse `json:"specialists"`
	Capabilities []CapabilityResponse `json:"capabilities"`
}

// BlacklistEntryResponse запись чёрного списка
type BlacklistEntryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlacklistResponse ответ со списком записей чёрного списка
type BlacklistResponse struct {
	Entries []BlacklistEntryResponse `json:"entries"`
}

// ClosedDayResponse нерабочий день
type ClosedDayResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2026-03-16"
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClosedDaysResponse ответ со списком нерабочих дней
type ClosedDaysResponse struct {
	ClosedDays []ClosedDayResponse `json:"closedDays"`
}

// Методы конвертации

// FromDomainCatalog собирает каталог из domain моделей
func FromDomainCatalog(
	services []domain.Service,
	specialists []domain.Specialist,
	capabilities []domain.Capability,
) *CatalogResponse {
	resp := &CatalogResponse{
		Services:     make([]ServiceResponse, 0, len(services)),
		Specialists:  make([]SpecialistResponse, 0, len(specialists)),
		Capabilities: make([]CapabilityResponse, 0, len(capabilities)),
	}

	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Title:           s.Title,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}

	for _, sp := range specialists {
		resp.Specialists = append(resp.Specialists, SpecialistResponse{
			ID:       sp.ID,
			Name:     sp.Name,
			Role:     sp.Role,
			IsActive: sp.IsActive,
		})
	}

	for _, c := range capabilities {
		resp.Capabilities = append(resp.Capabilities, CapabilityResponse{
			SpecialistID: c.SpecialistID,
			ServiceID:    c.ServiceID,
		})
	}

	return resp
}

// FromDomainBlacklistEntry конвертирует domain модель в DTO
func FromDomainBlacklistEntry(e *domain.BlacklistEntry) *BlacklistEntryResponse {
	if e == nil {
		return nil
	}

	return &BlacklistEntryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
	}
}

// FromDomainBlacklist конвертирует список domain моделей в DTO
func FromDomainBlacklist(entries []domain.BlacklistEntry) *BlacklistResponse {
	resp := &BlacklistResponse{
		Entries: make([]BlacklistEntryResponse, 0, len(entries)),
	}

	for i := range entries {
		resp.Entries = append(resp.Entries, *FromDomainBlacklistEntry(&entries[i]))
	}

	return resp
}

// FromDomainClosedDay конвертирует domain модель в DTO
func FromDomainClosedDay(d *domain.ClosedDay) *ClosedDayResponse {
	if d == nil {
		return nil
	}

	return &ClosedDayResponse{
		ID:        d.ID,
		Date:      d.Date.Format(domain.DateFormat),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainClosedDays конвертирует список domain моделей в DTO
func FromDomainClosedDays(days []domain.ClosedDay) *ClosedDaysResponse {
	resp := &ClosedDaysResponse{
		ClosedDays: make([]ClosedDayResponse, 0, len(days)),
	}

	for i := range days {
		resp.ClosedDays = append(resp.ClosedDays, *FromDomainClosedDay(&days[i]))
	}

	return resp
}
