package set_availability

import (
	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// Entry одна пара (день недели, слот) с флагом доступности
type Entry struct {
	DayOfWeek   int // 0 = Sunday ... 6 = Saturday
	TimeSlot    types.TimeString
	IsAvailable bool
}

// Request модель запроса на полную замену набора флагов в рамках scope.
// Пары, отсутствующие в Entries, после замены считаются закрытыми.
type Request struct {
	Scope   domain.AvailabilityScope
	Entries []Entry
}

// Response модель ответа с количеством записанных флагов
type Response struct {
	Scope        domain.AvailabilityScope
	WrittenFlags int
}
