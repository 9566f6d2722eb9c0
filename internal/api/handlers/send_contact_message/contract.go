package send_contact_message

import (
	"github.com/eh-co/CryoBookingService/internal/service/notifications"
)

type NotificationService interface {
	SendContactMessage(msg *notifications.ContactMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
