package create_appointment

import (
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// Request модель запроса на создание записи.
// Используется обоими входами: публичной формой (статус pending)
// и админкой (статус confirmed).
type Request struct {
	PatientName  string `validate:"required"`
	PatientEmail string `validate:"required,email,max=254"`
	PatientPhone string `validate:"required,max=40"`

	ServiceID string           `validate:"required"`
	Date      time.Time        `validate:"required"`
	TimeSlot  types.TimeString `validate:"required"`

	Notes             *string
	EmergencyContact  *string `validate:"omitempty,max=120"`
	EmergencyPhone    *string `validate:"omitempty,max=40"`
	InsuranceProvider *string `validate:"omitempty,max=120"`
	FirstVisit        bool

	// InitialStatus задается входной точкой, не клиентом
	InitialStatus domain.AppointmentStatus
}

// Response модель ответа с созданной записью
type Response struct {
	ID           string
	PatientName  string
	PatientEmail string
	PatientPhone string

	ServiceID       string
	ServiceName     string
	DurationMinutes int
	Price           float64

	Date     time.Time
	TimeSlot types.TimeString
	Status   string

	Notes             *string
	EmergencyContact  *string
	EmergencyPhone    *string
	InsuranceProvider *string
	FirstVisit        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
