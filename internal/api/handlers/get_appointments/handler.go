package get_appointments

import (
	"errors"
	"net/http"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	"github.com/eh-co/CryoBookingService/internal/service/appointments"
	"github.com/eh-co/CryoBookingService/internal/service/appointments/models"
)

const msgInvalidFilter = "unbekannter Filter, erwartet all, today, upcoming oder pending"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments?filter=today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	result, err := h.service.List(r.Context(), &models.ListAppointmentsRequest{Filter: filter})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid filter: %s", filter)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Fetched %d appointments, filter=%s", result.Total, filter)
	handlers.RespondJSON(w, http.StatusOK, result)
}
