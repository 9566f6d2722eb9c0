package get_available_slots

import (
	"github.com/eh-co/CryoBookingService/internal/domain"
	resolveAvailability "github.com/eh-co/CryoBookingService/internal/usecase/resolve_availability"
)

// SlotResponse HTTP response model одного слота
type SlotResponse struct {
	Time      string `json:"time"` // "10:00"
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model со всеми слотами шаблона на дату
type SlotsResponse struct {
	Date  string         `json:"date"` // "2026-03-15"
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
		}
	}
	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
