package get_availability

import (
	"context"
	"time"

	"github.com/eh-co/CryoBookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWeek(ctx context.Context, date time.Time) (*models.AvailabilityResponse, error)
	GetGlobal(ctx context.Context) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
