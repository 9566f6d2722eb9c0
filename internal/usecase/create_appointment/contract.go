package create_appointment

import (
	"context"
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ExistsActiveAt(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс для уведомлений о созданной записи.
// Реализация отправляет письма асинхронно и не возвращает ошибку:
// запись уже зафиксирована, сбой почты её не откатывает.
type Notifier interface {
	AppointmentCreated(appt *domain.Appointment)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
