package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eh-co/CryoBookingService/internal/domain"
	appointmentRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/appointment"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции, поэтому из двух конкурирующих запросов на один слот
// успешным будет ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: patient=%s, service=%s, date=%s, slot=%s, status=%s",
		req.PatientEmail, req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.InitialStatus)

	// 2. Получаем услугу из каталога
	service, ok := domain.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем, что слот еще не занят активной записью
		taken, err := uc.appointmentRepo.ExistsActiveAt(txCtx, req.Date, req.TimeSlot)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken",
				req.TimeSlot, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 4.2. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			ID:           uuid.NewString(),
			PatientName:  req.PatientName,
			PatientEmail: req.PatientEmail,
			PatientPhone: req.PatientPhone,
			// Денормализация данных услуги
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,

			Date:     req.Date,
			TimeSlot: req.TimeSlot,
			Status:   req.InitialStatus,

			Notes:             req.Notes,
			EmergencyContact:  req.EmergencyContact,
			EmergencyPhone:    req.EmergencyPhone,
			InsuranceProvider: req.InsuranceProvider,
			FirstVisit:        req.FirstVisit,
		}

		// 4.3. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс ловит гонку, которую не поймала проверка выше
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				uc.logger.Warn("CreateAppointment: slot %s on %s taken by concurrent insert",
					req.TimeSlot, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 5. Уведомления отправляются после коммита и не влияют на результат
	uc.notifier.AppointmentCreated(result)

	return &Response{
		ID:                result.ID,
		PatientName:       result.PatientName,
		PatientEmail:      result.PatientEmail,
		PatientPhone:      result.PatientPhone,
		ServiceID:         result.ServiceID,
		ServiceName:       result.ServiceName,
		DurationMinutes:   result.DurationMinutes,
		Price:             result.Price,
		Date:              result.Date,
		TimeSlot:          result.TimeSlot,
		Status:            string(result.Status),
		Notes:             result.Notes,
		EmergencyContact:  result.EmergencyContact,
		EmergencyPhone:    result.EmergencyPhone,
		InsuranceProvider: result.InsuranceProvider,
		FirstVisit:        result.FirstVisit,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
