package get_availability

import (
	"net/http"
	"time"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	"github.com/eh-co/CryoBookingService/internal/domain"
)

const msgInvalidWeekStart = "ungültiges Datumsformat für week_start, erwartet JJJJ-MM-TT"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability?week_start=2026-03-09
// Без параметра week_start возвращается глобальный дефолт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekStartStr := r.URL.Query().Get("week_start")

	if weekStartStr == "" {
		result, err := h.service.GetGlobal(r.Context())
		if err != nil {
			h.logger.Error("GET /admin/availability - Failed to fetch global flags: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	weekStart, err := time.Parse(domain.DateFormat, weekStartStr)
	if err != nil {
		h.logger.Warn("GET /admin/availability - Invalid week_start: %s", weekStartStr)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	result, err := h.service.GetWeek(r.Context(), weekStart)
	if err != nil {
		h.logger.Error("GET /admin/availability - Failed to fetch week flags: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/availability - Fetched %d flags, source=%s", len(result.Flags), result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
