package domain

import (
	"time"

	"github.com/eh-co/CryoBookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a patient appointment at the clinic
type Appointment struct {
	ID           string
	PatientName  string
	PatientEmail string
	PatientPhone string

	// Denormalized service data, captured at booking time so that later
	// catalog changes do not rewrite history
	ServiceID       string
	ServiceName     string
	DurationMinutes int
	Price           float64

	Date     time.Time
	TimeSlot types.TimeString
	Status   AppointmentStatus

	Notes             *string
	EmergencyContact  *string
	EmergencyPhone    *string
	InsuranceProvider *string
	FirstVisit        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot reports whether the appointment occupies its time slot.
// Cancelled appointments free the slot for new bookings.
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCancelled
}

// CanBeConfirmed returns true if a staff confirmation is allowed
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCompleted returns true if the appointment can be marked as done
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}

// IsValidStatus reports whether s is one of the known lifecycle statuses
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransition validates a staff-driven status change.
// Allowed: pending -> confirmed, pending -> cancelled, confirmed -> completed,
// confirmed -> cancelled.
func CanTransition(from, to AppointmentStatus) bool {
	appt := Appointment{Status: from}
	switch to {
	case StatusConfirmed:
		return appt.CanBeConfirmed()
	case StatusCancelled:
		return appt.CanBeCancelled()
	case StatusCompleted:
		return appt.CanBeCompleted()
	default:
		return false
	}
}

// AppointmentListFilter предустановленные фильтры списка записей для админки
type AppointmentListFilter string

const (
	FilterAll      AppointmentListFilter = "all"
	FilterToday    AppointmentListFilter = "today"
	FilterUpcoming AppointmentListFilter = "upcoming"
	FilterPending  AppointmentListFilter = "pending"
)

// IsValidListFilter reports whether f is a known filter value
func IsValidListFilter(f AppointmentListFilter) bool {
	switch f {
	case FilterAll, FilterToday, FilterUpcoming, FilterPending:
		return true
	default:
		return false
	}
}
