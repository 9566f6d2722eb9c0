package send_contact_message

import (
	"errors"
	"net/http"

	"github.com/eh-co/CryoBookingService/internal/api/handlers"
	"github.com/eh-co/CryoBookingService/internal/service/notifications"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgMissingFields      = "Name, E-Mail und Nachricht sind erforderlich"
	msgSendFailed         = "Nachricht konnte nicht gesendet werden, bitte versuchen Sie es später erneut"
)

type Handler struct {
	notifications NotificationService
	logger        Logger
}

func NewHandler(notifications NotificationService, logger Logger) *Handler {
	return &Handler{
		notifications: notifications,
		logger:        logger,
	}
}

// Handle POST /api/v1/contact
// Отправка синхронная: у сообщения нет состояния в БД, отправитель
// должен увидеть ошибку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.notifications.SendContactMessage(&notifications.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})

	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("POST /contact - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, notifications.ErrSendFailed):
			h.logger.Error("POST /contact - Send failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /contact - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message relayed from=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, ContactResponse{Sent: true})
}
