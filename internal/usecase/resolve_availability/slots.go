package resolve_availability

import (
	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// combineSlots вычисляет статус каждого слота шаблона на конкретный день.
//
// Слот доступен, только если он явно открыт флагом И не занят активной
// записью. Отсутствие флага означает закрытый слот: при пустом наборе
// флагов весь день закрыт.
func combineSlots(
	template []types.TimeString,
	dayOfWeek int,
	flags []domain.AvailabilityFlag,
	blocked []types.TimeString,
) []domain.TimeSlot {
	open := make(map[types.TimeString]bool, len(flags))
	for _, f := range flags {
		if f.DayOfWeek == dayOfWeek && f.IsAvailable {
			open[f.TimeSlot] = true
		}
	}

	blockedSet := make(map[types.TimeString]bool, len(blocked))
	for _, slot := range blocked {
		blockedSet[slot] = true
	}

	result := make([]domain.TimeSlot, len(template))
	for i, slot := range template {
		result[i] = domain.TimeSlot{
			Time:      slot,
			Available: open[slot] && !blockedSet[slot],
		}
	}

	return result
}
