package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/internal/service/availability/models"
)

// Service сервис чтения расписания доступности для админки
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// GetWeek возвращает флаги недели, содержащей date.
// Если у недели нет собственных флагов, возвращается глобальный дефолт
// с соответствующим source, чтобы админка видела, что именно она
// редактирует.
func (s *Service) GetWeek(ctx context.Context, date time.Time) (*models.AvailabilityResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: week date is required", ErrInvalidInput)
	}

	weekStart := domain.MondayOfWeek(date)
	s.logger.Info("GetWeek: fetching availability for week_start=%s", weekStart.Format(domain.DateFormat))

	flags, err := s.availabilityRepo.GetWeekFlags(ctx, weekStart)
	if err != nil {
		s.logger.Error("GetWeek: failed to get week flags: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	if len(flags) > 0 {
		s.logger.Info("GetWeek: week_start=%s has %d own flags", weekStart.Format(domain.DateFormat), len(flags))
		return &models.AvailabilityResponse{
			WeekStart: weekStart.Format(domain.DateFormat),
			Source:    models.SourceWeek,
			Flags:     models.FromDomainFlags(flags),
		}, nil
	}

	globalFlags, err := s.availabilityRepo.GetGlobalFlags(ctx)
	if err != nil {
		s.logger.Error("GetWeek: failed to get global flags: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	source := models.SourceGlobal
	if len(globalFlags) == 0 {
		source = models.SourceNone
	}

	s.logger.Info("GetWeek: week_start=%s has no own flags, returning %d global flags",
		weekStart.Format(domain.DateFormat), len(globalFlags))

	return &models.AvailabilityResponse{
		WeekStart: weekStart.Format(domain.DateFormat),
		Source:    source,
		Flags:     models.FromDomainFlags(globalFlags),
	}, nil
}

// GetGlobal возвращает глобальный дефолтный набор флагов
func (s *Service) GetGlobal(ctx context.Context) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetGlobal: fetching global availability")

	flags, err := s.availabilityRepo.GetGlobalFlags(ctx)
	if err != nil {
		s.logger.Error("GetGlobal: failed to get global flags: %v", err)
		return nil, fmt.Errorf("%w: GetGlobal - repository error: %v", ErrInternal, err)
	}

	source := models.SourceGlobal
	if len(flags) == 0 {
		source = models.SourceNone
	}

	return &models.AvailabilityResponse{
		Source: source,
		Flags:  models.FromDomainFlags(flags),
	}, nil
}
