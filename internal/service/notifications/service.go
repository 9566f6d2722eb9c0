package notifications

import (
	"fmt"
	"strings"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

// ContactMessage сообщение из формы обратной связи
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Service сервис почтовых уведомлений клиники.
//
// Уведомления о записях отправляются асинхронно и best-effort: запись
// уже зафиксирована в БД, сбой почты только логируется. Сообщения
// формы обратной связи наоборот отправляются синхронно, у них нет
// состояния в БД и отправитель должен узнать об ошибке.
type Service struct {
	mailer       Mailer
	clinicName   string
	adminEmail   string
	contactEmail string
	logger       Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(mailer Mailer, clinicName, adminEmail, contactEmail string, logger Logger) *Service {
	return &Service{
		mailer:       mailer,
		clinicName:   clinicName,
		adminEmail:   adminEmail,
		contactEmail: contactEmail,
		logger:       logger,
	}
}

// AppointmentCreated уведомляет админку о новой записи и отправляет
// пациенту подтверждение получения анкеты
func (s *Service) AppointmentCreated(appt *domain.Appointment) {
	data := s.appointmentData(appt)

	go func() {
		adminBody, err := renderTemplate(adminBookingTemplate, data)
		if err != nil {
			s.logger.Error("AppointmentCreated: %v", err)
		} else if err := s.mailer.Send(s.adminEmail, "Neue Terminanfrage: "+data.Date+" "+data.TimeSlot, adminBody); err != nil {
			s.logger.Error("AppointmentCreated: admin mail for appointment id=%s failed: %v", appt.ID, err)
		}

		ackBody, err := renderTemplate(patientAckTemplate, data)
		if err != nil {
			s.logger.Error("AppointmentCreated: %v", err)
			return
		}
		if err := s.mailer.Send(appt.PatientEmail, "Ihre Terminanfrage bei "+s.clinicName, ackBody); err != nil {
			s.logger.Error("AppointmentCreated: patient mail for appointment id=%s failed: %v", appt.ID, err)
		}
	}()
}

// AppointmentConfirmed отправляет пациенту подтверждение термина
func (s *Service) AppointmentConfirmed(appt *domain.Appointment) {
	data := s.appointmentData(appt)

	go func() {
		body, err := renderTemplate(patientConfirmTemplate, data)
		if err != nil {
			s.logger.Error("AppointmentConfirmed: %v", err)
			return
		}
		if err := s.mailer.Send(appt.PatientEmail, "Terminbestätigung "+data.Date+" "+data.TimeSlot, body); err != nil {
			s.logger.Error("AppointmentConfirmed: patient mail for appointment id=%s failed: %v", appt.ID, err)
		}
	}()
}

// SendContactMessage пересылает сообщение формы обратной связи на
// контактный адрес клиники. Отправка синхронная, ошибка возвращается
// вызывающему.
func (s *Service) SendContactMessage(msg *ContactMessage) error {
	if msg == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrInvalidInput)
	}

	body, err := renderTemplate(contactRelayTemplate, mailData{
		SenderName:  msg.Name,
		SenderEmail: msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Message,
	})
	if err != nil {
		s.logger.Error("SendContactMessage: %v", err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	subject := "Kontaktanfrage von " + msg.Name
	if msg.Subject != "" {
		subject = "Kontaktanfrage: " + msg.Subject
	}

	if err := s.mailer.Send(s.contactEmail, subject, body); err != nil {
		s.logger.Error("SendContactMessage: relay from=%s failed: %v", msg.Email, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("SendContactMessage: relayed message from=%s", msg.Email)
	return nil
}

func (s *Service) appointmentData(appt *domain.Appointment) mailData {
	notes := ""
	if appt.Notes != nil {
		notes = *appt.Notes
	}

	return mailData{
		ClinicName:   s.clinicName,
		PatientName:  appt.PatientName,
		PatientEmail: appt.PatientEmail,
		PatientPhone: appt.PatientPhone,
		ServiceName:  appt.ServiceName,
		Date:         appt.Date.Format(domain.DateFormat),
		TimeSlot:     appt.TimeSlot.String(),
		Price:        appt.Price,
		Notes:        notes,
		FirstVisit:   appt.FirstVisit,
	}
}
