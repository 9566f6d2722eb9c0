package set_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/eh-co/CryoBookingService/internal/domain"
	availabilityRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/availability"
)

// UseCase use case для полной замены набора флагов доступности
type UseCase struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет полную замену набора флагов в рамках scope.
// Удаление старого набора и вставка нового идут в одной сериализуемой
// транзакции: сбой на любом шаге откатывает всё, наполовину очищенного
// расписания не бывает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Убираем дубликаты пар (день, слот), последнее вхождение выигрывает
	entries := dedupeEntries(req.Entries)

	uc.logger.Info("SetAvailability: scope=%s, entries=%d (after dedupe %d)",
		req.Scope, len(req.Entries), len(entries))

	flags := make([]domain.AvailabilityFlag, len(entries))
	for i, e := range entries {
		flags[i] = domain.AvailabilityFlag{
			DayOfWeek:   e.DayOfWeek,
			TimeSlot:    e.TimeSlot,
			IsAvailable: e.IsAvailable,
		}
	}

	// 3. Полная замена набора в транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if weekStart, ok := req.Scope.WeekStart(); ok {
			return uc.availabilityRepo.ReplaceWeekFlags(txCtx, weekStart, flags)
		}
		return uc.availabilityRepo.ReplaceGlobalFlags(txCtx, flags)
	})

	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrDeleteScope):
			uc.logger.Error("SetAvailability: failed to clear scope %s: %v", req.Scope, err)
			return nil, fmt.Errorf("%w: %v", ErrClearFailed, err)
		case errors.Is(err, availabilityRepo.ErrInsertScope):
			uc.logger.Error("SetAvailability: failed to insert scope %s: %v", req.Scope, err)
			return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
		default:
			uc.logger.Error("SetAvailability: transaction failed for scope %s: %v", req.Scope, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("SetAvailability: scope=%s replaced with %d flags", req.Scope, len(flags))

	return &Response{
		Scope:        req.Scope,
		WrittenFlags: len(flags),
	}, nil
}

// ApplyPreset заменяет набор флагов scope на именованный пресет
func (uc *UseCase) ApplyPreset(ctx context.Context, scope domain.AvailabilityScope, preset string) (*Response, error) {
	entries, ok := presetEntries(preset)
	if !ok {
		uc.logger.Warn("SetAvailability: unknown preset %q", preset)
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}

	uc.logger.Info("SetAvailability: applying preset %q to scope %s", preset, scope)

	return uc.Execute(ctx, &Request{
		Scope:   scope,
		Entries: entries,
	})
}
