package resolve_availability

import (
	"context"
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	GetBlockedSlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

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
