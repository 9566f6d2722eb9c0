package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/eh-co/CryoBookingService/internal/domain"
	appointmentRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/appointment"
	"github.com/eh-co/CryoBookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями в админке
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List получает список записей по предустановленному фильтру.
// Пустой фильтр трактуется как "all".
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter := domain.AppointmentListFilter(req.Filter)
	if req.Filter == "" {
		filter = domain.FilterAll
	}

	if !domain.IsValidListFilter(filter) {
		s.logger.Warn("List: invalid filter=%s", req.Filter)
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, req.Filter)
	}

	s.logger.Info("List: fetching appointments, filter=%s", filter)

	appts, err := s.appointmentRepo.List(ctx, filter, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// UpdateStatus обновляет статус записи.
// Разрешены только переходы pending -> confirmed/cancelled и
// confirmed -> completed/cancelled. При подтверждении пациенту
// отправляется письмо.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	newStatus := domain.AppointmentStatus(req.Status)
	if !domain.IsValidStatus(newStatus) {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(appt.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%s",
			appt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appt.Status = newStatus

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)

	// Письмо о подтверждении уходит после записи статуса, сбой почты
	// операцию не откатывает
	if newStatus == domain.StatusConfirmed {
		s.notifier.AppointmentConfirmed(appt)
	}

	return models.FromDomainAppointment(appt), nil
}

// Delete удаляет запись физически.
// Для освобождения слота с сохранением истории используется отмена,
// удаление предназначено для ошибочно созданных записей.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// Stats собирает счетчики для дашборда админки.
// Выручка считается по подтвержденным и завершенным записям.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()
	yesterday := now.AddDate(0, 0, -1)

	s.logger.Info("Stats: collecting dashboard stats for %s", now.Format(domain.DateFormat))

	today, err := s.appointmentRepo.CountByDate(ctx, now)
	if err != nil {
		s.logger.Error("Stats: failed to count today appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count today: %v", ErrInternal, err)
	}

	yesterdayCount, err := s.appointmentRepo.CountByDate(ctx, yesterday)
	if err != nil {
		s.logger.Error("Stats: failed to count yesterday appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count yesterday: %v", ErrInternal, err)
	}

	total, err := s.appointmentRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count all appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count all: %v", ErrInternal, err)
	}

	pending, err := s.appointmentRepo.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("Stats: failed to count pending appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count pending: %v", ErrInternal, err)
	}

	revenue, err := s.appointmentRepo.Revenue(ctx, []domain.AppointmentStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
	})
	if err != nil {
		s.logger.Error("Stats: failed to calculate revenue: %v", err)
		return nil, fmt.Errorf("%w: Stats - revenue: %v", ErrInternal, err)
	}

	return models.FromDomainStats(&domain.AdminStats{
		TodayAppointments:     today,
		YesterdayAppointments: yesterdayCount,
		TotalAppointments:     total,
		PendingAppointments:   pending,
		Revenue:               revenue,
	}), nil
}
