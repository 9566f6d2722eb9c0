package create_appointment

import (
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	createAppointment "github.com/eh-co/CryoBookingService/internal/usecase/create_appointment"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`

	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`     // "2026-03-15"
	TimeSlot  string `json:"timeSlot"` // "10:00"

	Notes             *string `json:"notes,omitempty"`
	EmergencyContact  *string `json:"emergencyContact,omitempty"`
	EmergencyPhone    *string `json:"emergencyPhone,omitempty"`
	InsuranceProvider *string `json:"insuranceProvider,omitempty"`
	FirstVisit        bool    `json:"firstVisit"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           string `json:"id"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`

	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`

	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Status   string `json:"status"`

	Notes             *string `json:"notes,omitempty"`
	EmergencyContact  *string `json:"emergencyContact,omitempty"`
	EmergencyPhone    *string `json:"emergencyPhone,omitempty"`
	InsuranceProvider *string `json:"insuranceProvider,omitempty"`
	FirstVisit        bool    `json:"firstVisit"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// initialStatus задается входной точкой: pending для публичной формы,
// confirmed для админки.
func (r *CreateAppointmentRequest) ToUseCaseRequest(initialStatus domain.AppointmentStatus) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		PatientName:       r.PatientName,
		PatientEmail:      r.PatientEmail,
		PatientPhone:      r.PatientPhone,
		ServiceID:         r.ServiceID,
		Date:              date,
		TimeSlot:          slot,
		Notes:             r.Notes,
		EmergencyContact:  r.EmergencyContact,
		EmergencyPhone:    r.EmergencyPhone,
		InsuranceProvider: r.InsuranceProvider,
		FirstVisit:        r.FirstVisit,
		InitialStatus:     initialStatus,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                resp.ID,
		PatientName:       resp.PatientName,
		PatientEmail:      resp.PatientEmail,
		PatientPhone:      resp.PatientPhone,
		ServiceID:         resp.ServiceID,
		ServiceName:       resp.ServiceName,
		DurationMinutes:   resp.DurationMinutes,
		Price:             resp.Price,
		Date:              resp.Date.Format(domain.DateFormat),
		TimeSlot:          resp.TimeSlot.String(),
		Status:            resp.Status,
		Notes:             resp.Notes,
		EmergencyContact:  resp.EmergencyContact,
		EmergencyPhone:    resp.EmergencyPhone,
		InsuranceProvider: resp.InsuranceProvider,
		FirstVisit:        resp.FirstVisit,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
