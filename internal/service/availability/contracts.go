package availability

import (
	"context"
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория флагов доступности
type AvailabilityRepository interface {
	GetWeekFlags(ctx context.Context, weekStart time.Time) ([]domain.AvailabilityFlag, error)
	GetGlobalFlags(ctx context.Context) ([]domain.AvailabilityFlag, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
