package set_availability

import (
	"errors"
	"net/http"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	setAvailability "github.com/eh-co/CryoBookingService/internal/usecase/set_availability"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidWeekStart   = "ungültiges Datumsformat für weekStart, erwartet JJJJ-MM-TT"
	msgInvalidEntries     = "ungültige Verfügbarkeitsdaten"
	msgUnknownPreset      = "unbekannte Vorlage"
	msgWriteFailed        = "Verfügbarkeit konnte nicht gespeichert werden"
)

type Handler struct {
	useCase SetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/availability
// Полная замена набора флагов: пары вне Entries после замены закрыты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /admin/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, "PUT /admin/availability", err)
		return
	}

	h.logger.Info("PUT /admin/availability - Replaced scope=%s with %d flags",
		result.Scope, result.WrittenFlags)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandlePreset POST /api/v1/admin/availability/preset
func (h *Handler) HandlePreset(w http.ResponseWriter, r *http.Request) {
	var req PresetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability/preset - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	scope, err := req.ToScope()
	if err != nil {
		h.logger.Warn("POST /admin/availability/preset - Invalid weekStart: %s", req.WeekStart)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	result, err := h.useCase.ApplyPreset(r.Context(), scope, req.Preset)
	if err != nil {
		if errors.Is(err, setAvailability.ErrUnknownPreset) {
			h.logger.Warn("POST /admin/availability/preset - Unknown preset: %s", req.Preset)
			handlers.RespondBadRequest(w, msgUnknownPreset)
			return
		}
		h.respondUseCaseError(w, "POST /admin/availability/preset", err)
		return
	}

	h.logger.Info("POST /admin/availability/preset - Applied preset=%s to scope=%s, flags=%d",
		req.Preset, result.Scope, result.WrittenFlags)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, setAvailability.ErrInvalidInput):
		h.logger.Warn("%s - Invalid entries: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEntries)

	case errors.Is(err, setAvailability.ErrClearFailed), errors.Is(err, setAvailability.ErrWriteFailed):
		h.logger.Error("%s - Write failed: %v", route, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgWriteFailed)

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
