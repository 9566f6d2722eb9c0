package create_appointment

import (
	"errors"
	"net/http"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	"github.com/eh-co/CryoBookingService/internal/domain"
	createAppointment "github.com/eh-co/CryoBookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidDateOrTime  = "ungültiges Datum oder Uhrzeit"
	msgValidationFailed   = "ungültige Termindaten"
	msgServiceNotFound    = "Behandlung nicht gefunden"
	msgInvalidDate        = "Termine können nur in der Zukunft gebucht werden"
	msgSlotTaken          = "dieser Termin ist leider bereits vergeben"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Публичная форма бронирования, запись создается в статусе pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.StatusPending, "POST /appointments")
}

// HandleStaff POST /api/v1/admin/appointments
// Запись из админки создается сразу подтвержденной
func (h *Handler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, domain.StatusConfirmed, "POST /admin/appointments")
}

// create общий код обоих входов: оба проходят через один use case
// с одинаковой валидацией и одинаковой проверкой занятости слота
func (h *Handler) create(w http.ResponseWriter, r *http.Request, initialStatus domain.AppointmentStatus, route string) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(initialStatus)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("%s - Slot taken: date=%s, slot=%s", route, req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: service_id=%s", route, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("%s - Invalid date: date=%s", route, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrValidation):
			h.logger.Warn("%s - Validation failed: %v", route, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("%s - Failed to create appointment: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointment created: id=%s, date=%s, slot=%s, status=%s",
		route, result.ID, req.Date, req.TimeSlot, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
