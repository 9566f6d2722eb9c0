package get_services

import (
	"net/http"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	"github.com/eh-co/CryoBookingService/internal/domain"
)

const msgUnknownCategory = "unbekannte Kategorie"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/services
// Каталог компилируется в бинарник, поэтому handler обходится без сервиса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	if category == "" {
		handlers.RespondJSON(w, http.StatusOK, FromDomainServices(domain.Services))
		return
	}

	switch domain.ServiceCategory(category) {
	case domain.CategoryConsultation, domain.CategoryCooling:
		services := domain.ServicesByCategory(domain.ServiceCategory(category))
		handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
	default:
		h.logger.Warn("GET /services - Unknown category: %s", category)
		handlers.RespondBadRequest(w, msgUnknownCategory)
	}
}
