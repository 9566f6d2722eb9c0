package set_availability

import (
	"context"
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория флагов доступности
type AvailabilityRepository interface {
	ReplaceWeekFlags(ctx context.Context, weekStart time.Time, flags []domain.AvailabilityFlag) error
	ReplaceGlobalFlags(ctx context.Context, flags []domain.AvailabilityFlag) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
