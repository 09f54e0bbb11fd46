package domain

// Service represents a salon service from the catalog
// Справочные данные, загружаются из БД
type Service struct {
	ID              int64
	Title           string
	DurationMinutes int // Длительность услуги в минутах, > 0
	Price           float64
}

// Specialist represents a salon specialist
type Specialist struct {
	ID       int64
	Name     string
	Role     string
	IsActive bool // Только активные мастера доступны для новых записей
}

// Capability пара (мастер, услуга): мастер умеет выполнять услугу
// Связь многие-ко-многим без весов и уровней квалификации
type Capability struct {
	SpecialistID int64
	ServiceID    int64
}

// CapabilitySet индекс способностей мастеров для быстрых проверок
type CapabilitySet map[int64]map[int64]struct{}

// NewCapabilitySet строит индекс по списку пар (мастер, услуга)
func NewCapabilitySet(capabilities []Capability) CapabilitySet {
	set := make(CapabilitySet)
	for _, c := range capabilities {
		services, ok := set[c.SpecialistID]
		if !ok {
			services = make(map[int64]struct{})
			set[c.SpecialistID] = services
		}
		services[c.ServiceID] = struct{}{}
	}
	return set
}

// CanPerform проверяет, умеет ли мастер выполнять услугу
func (s CapabilitySet) CanPerform(specialistID, serviceID int64) bool {
	services, ok := s[specialistID]
	if !ok {
		return false
	}
	_, ok = services[serviceID]
	return ok
}

// CanPerformAll проверяет, умеет ли мастер выполнять все перечисленные услуги
func (s CapabilitySet) CanPerformAll(specialistID int64, serviceIDs []int64) bool {
	for _, serviceID := range serviceIDs {
		if !s.CanPerform(specialistID, serviceID) {
			return false
		}
	}
	return true
}
