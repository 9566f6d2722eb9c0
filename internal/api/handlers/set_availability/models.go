package set_availability

import (
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	setAvailability "github.com/eh-co/CryoBookingService/internal/usecase/set_availability"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// EntryRequest одна пара (день, слот) в запросе
type EntryRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	TimeSlot    string `json:"timeSlot"`  // "10:00"
	IsAvailable bool   `json:"isAvailable"`
}

// SetAvailabilityRequest HTTP request model полной замены набора флагов.
// Без weekStart заменяется глобальный дефолт.
type SetAvailabilityRequest struct {
	WeekStart string         `json:"weekStart,omitempty"` // "2026-03-09"
	Entries   []EntryRequest `json:"entries"`
}

// PresetRequest HTTP request model применения пресета
type PresetRequest struct {
	WeekStart string `json:"weekStart,omitempty"`
	Preset    string `json:"preset"` // standard_hours | all_available | clear_all
}

// SetAvailabilityResponse HTTP response model
type SetAvailabilityResponse struct {
	Scope        string `json:"scope"`
	WrittenFlags int    `json:"writtenFlags"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetAvailabilityRequest) ToUseCaseRequest() (*setAvailability.Request, error) {
	scope, err := parseScope(r.WeekStart)
	if err != nil {
		return nil, err
	}

	entries := make([]setAvailability.Entry, len(r.Entries))
	for i, e := range r.Entries {
		slot, err := types.NewTimeStringFromString(e.TimeSlot)
		if err != nil {
			return nil, err
		}
		entries[i] = setAvailability.Entry{
			DayOfWeek:   e.DayOfWeek,
			TimeSlot:    slot,
			IsAvailable: e.IsAvailable,
		}
	}

	return &setAvailability.Request{
		Scope:   scope,
		Entries: entries,
	}, nil
}

// ToScope конвертирует weekStart пресет-запроса в scope
func (r *PresetRequest) ToScope() (domain.AvailabilityScope, error) {
	return parseScope(r.WeekStart)
}

func parseScope(weekStart string) (domain.AvailabilityScope, error) {
	if weekStart == "" {
		return domain.GlobalScope(), nil
	}
	date, err := time.Parse(domain.DateFormat, weekStart)
	if err != nil {
		return domain.AvailabilityScope{}, err
	}
	return domain.WeekScope(date), nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setAvailability.Response) *SetAvailabilityResponse {
	return &SetAvailabilityResponse{
		Scope:        resp.Scope.String(),
		WrittenFlags: resp.WrittenFlags,
	}
}
