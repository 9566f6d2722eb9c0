package models

import (
	"github.com/eh-co/CryoBookingService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Filter string `json:"filter"` // all | today | upcoming | pending
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID           string `json:"id"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`

	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`

	Date     string `json:"date"`     // "2026-03-15"
	TimeSlot string `json:"timeSlot"` // "10:00"
	Status   string `json:"status"`

	Notes             *string `json:"notes,omitempty"`
	EmergencyContact  *string `json:"emergencyContact,omitempty"`
	EmergencyPhone    *string `json:"emergencyPhone,omitempty"`
	InsuranceProvider *string `json:"insuranceProvider,omitempty"`
	FirstVisit        bool    `json:"firstVisit"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// StatsResponse ответ со счетчиками для дашборда админки
type StatsResponse struct {
	TodayAppointments     int     `json:"todayAppointments"`
	YesterdayAppointments int     `json:"yesterdayAppointments"`
	TotalAppointments     int     `json:"totalAppointments"`
	PendingAppointments   int     `json:"pendingAppointments"`
	Revenue               float64 `json:"revenue"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                appt.ID,
		PatientName:       appt.PatientName,
		PatientEmail:      appt.PatientEmail,
		PatientPhone:      appt.PatientPhone,
		ServiceID:         appt.ServiceID,
		ServiceName:       appt.ServiceName,
		DurationMinutes:   appt.DurationMinutes,
		Price:             appt.Price,
		Date:              appt.Date.Format(domain.DateFormat),
		TimeSlot:          appt.TimeSlot.String(),
		Status:            string(appt.Status),
		Notes:             appt.Notes,
		EmergencyContact:  appt.EmergencyContact,
		EmergencyPhone:    appt.EmergencyPhone,
		InsuranceProvider: appt.InsuranceProvider,
		FirstVisit:        appt.FirstVisit,
		CreatedAt:         appt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         appt.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// FromDomainStats конвертирует domain статистику в response
func FromDomainStats(stats *domain.AdminStats) *StatsResponse {
	return &StatsResponse{
		TodayAppointments:     stats.TodayAppointments,
		YesterdayAppointments: stats.YesterdayAppointments,
		TotalAppointments:     stats.TotalAppointments,
		PendingAppointments:   stats.PendingAppointments,
		Revenue:               stats.Revenue,
	}
}
