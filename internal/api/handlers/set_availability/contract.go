package set_availability

import (
	"context"

	"github.com/eh-co/CryoBookingService/internal/domain"
	setAvailability "github.com/eh-co/CryoBookingService/internal/usecase/set_availability"
)

type SetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *setAvailability.Request) (*setAvailability.Response, error)
	ApplyPreset(ctx context.Context, scope domain.AvailabilityScope, preset string) (*setAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
