package models

import (
	"github.com/eh-co/CryoBookingService/internal/domain"
)

// Источник набора флагов в ответе
const (
	SourceWeek   = "week"
	SourceGlobal = "global"
	SourceNone   = "none"
)

// FlagResponse один флаг доступности
type FlagResponse struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	TimeSlot    string `json:"timeSlot"`  // "10:00"
	IsAvailable bool   `json:"isAvailable"`
}

// AvailabilityResponse ответ с набором флагов и источником, из которого
// он был прочитан. Source показывает админке, редактирует ли она
// недельное переопределение или видит глобальный дефолт.
type AvailabilityResponse struct {
	WeekStart string          `json:"weekStart,omitempty"` // "2026-03-09", пусто для глобального набора
	Source    string          `json:"source"`              // week | global | none
	Flags     []*FlagResponse `json:"flags"`
}

// FromDomainFlags конвертирует domain флаги в response
func FromDomainFlags(flags []domain.AvailabilityFlag) []*FlagResponse {
	result := make([]*FlagResponse, len(flags))
	for i, f := range flags {
		result[i] = &FlagResponse{
			DayOfWeek:   f.DayOfWeek,
			TimeSlot:    f.TimeSlot.String(),
			IsAvailable: f.IsAvailable,
		}
	}
	return result
}
