package resolve_availability

import (
	"context"
	"fmt"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

// UseCase use case для вычисления доступных слотов на дату
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute выполняет use case вычисления слотов.
//
// Источник флагов выбирается по приоритету: если у недели, содержащей дату,
// есть хотя бы один флаг, используется только недельный набор; иначе
// глобальный дефолт; если нет и его, день полностью закрыт.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	date := req.Date
	weekStart := domain.MondayOfWeek(date)
	uc.logger.Info("ResolveAvailability: date=%s, week_start=%s",
		date.Format(domain.DateFormat), weekStart.Format(domain.DateFormat))

	// 2. Получаем флаги недели
	flags, err := uc.availabilityRepo.GetWeekFlags(ctx, weekStart)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get week flags: %v", err)
		return nil, fmt.Errorf("%w: failed to get week flags: %v", ErrStoreUnavailable, err)
	}

	// 3. Если у недели нет ни одного флага, берем глобальный дефолт
	if len(flags) == 0 {
		flags, err = uc.availabilityRepo.GetGlobalFlags(ctx)
		if err != nil {
			uc.logger.Error("ResolveAvailability: failed to get global flags: %v", err)
			return nil, fmt.Errorf("%w: failed to get global flags: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Info("ResolveAvailability: no week flags, using %d global flags", len(flags))
	} else {
		uc.logger.Info("ResolveAvailability: using %d week flags", len(flags))
	}

	// 4. Получаем слоты, занятые активными записями
	blocked, err := uc.appointmentRepo.GetBlockedSlots(ctx, date)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrStoreUnavailable, err)
	}

	// 5. Комбинируем шаблон, флаги и занятые слоты
	slots := combineSlots(domain.DefaultScheduleTemplate(), int(date.Weekday()), flags, blocked)

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	uc.logger.Info("ResolveAvailability: date=%s, %d of %d slots available",
		date.Format(domain.DateFormat), available, len(slots))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}
