package set_availability

import (
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// Имена пресетов расписания для админки
const (
	PresetStandardHours = "standard_hours"
	PresetAllAvailable  = "all_available"
	PresetClearAll      = "clear_all"
)

// standardHourSlots слоты пресета "стандартные часы": будни с перерывом на обед
var standardHourSlots = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

// presetEntries строит набор флагов для именованного пресета.
// Второй результат false означает неизвестное имя пресета.
func presetEntries(preset string) ([]Entry, bool) {
	switch preset {
	case PresetStandardHours:
		entries := make([]Entry, 0, len(standardHourSlots)*5)
		for day := int(time.Monday); day <= int(time.Friday); day++ {
			for _, slot := range standardHourSlots {
				entries = append(entries, Entry{DayOfWeek: day, TimeSlot: slot, IsAvailable: true})
			}
		}
		return entries, true

	case PresetAllAvailable:
		template := domain.DefaultScheduleTemplate()
		entries := make([]Entry, 0, len(template)*6)
		for day := int(time.Monday); day <= int(time.Saturday); day++ {
			for _, slot := range template {
				entries = append(entries, Entry{DayOfWeek: day, TimeSlot: slot, IsAvailable: true})
			}
		}
		return entries, true

	case PresetClearAll:
		return []Entry{}, true

	default:
		return nil, false
	}
}
