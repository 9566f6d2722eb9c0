package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	"github.com/eh-co/CryoBookingService/internal/domain"
	resolveAvailability "github.com/eh-co/CryoBookingService/internal/usecase/resolve_availability"
)

const (
	msgMissingDate      = "Parameter date fehlt"
	msgInvalidDate      = "ungültiges Datumsformat, erwartet JJJJ-MM-TT"
	msgStoreUnavailable = "Verfügbarkeit kann derzeit nicht geladen werden"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots?date=2026-03-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, resolveAvailability.ErrStoreUnavailable):
			// При недоступном хранилище слоты НЕ выдаются как свободные
			h.logger.Error("GET /availability/slots - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /availability/slots - Failed to resolve availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Resolved %d slots for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
