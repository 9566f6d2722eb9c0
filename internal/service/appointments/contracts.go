package appointments

import (
	"context"
	"time"

	"github.com/eh-co/CryoBookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentListFilter, today time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
	CountByDate(ctx context.Context, date time.Time) (int, error)
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error)
	CountAll(ctx context.Context) (int, error)
	Revenue(ctx context.Context, statuses []domain.AppointmentStatus) (float64, error)
}

// Notifier интерфейс для уведомлений пациента о подтверждении записи.
// Реализация отправляет письма асинхронно, сбой не влияет на операцию.
type Notifier interface {
	AppointmentConfirmed(appt *domain.Appointment)
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
