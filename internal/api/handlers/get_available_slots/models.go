package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	SpecialistID int64           `json:"specialistId"`
	Date         string          `json:"date"`
	Closed       bool            `json:"closed"`
	Slots        []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(specialistID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SpecialistID: specialistID,
		Date:         date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		SpecialistID: resp.SpecialistID,
		Date:         resp.Date.Format(domain.DateFormat),
		Closed:       resp.Closed,
		Slots:        slots,
	}
}
