package get_available_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP response model одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model дневной сетки
type AvailableSlotsResponse struct {
	StylistID int64          `json:"stylistId"`
	ServiceID int64          `json:"serviceId"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		StylistID: resp.StylistID,
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
