package domain

import "github.com/eh-co/CryoBookingService/pkg/types"

// DateFormat формат дат в API и БД (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Daily schedule template parameters: candidate slots run from the
// opening hour up to and including the top of the closing hour.
const (
	ScheduleOpenHour    = 8
	ScheduleCloseHour   = 18
	ScheduleStepMinutes = 30
)

// ScheduleBreakSlots слоты обеденного перерыва, исключаются из расписания
var ScheduleBreakSlots = []types.TimeString{"12:30", "13:00", "13:30"}

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxPatientNameLength = 120
)

// BlockingStatuses статусы, при которых запись занимает слот.
// Используется при вычислении доступности.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
