package create_appointment

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eh-co/CryoBookingService/internal/domain"
	"github.com/eh-co/CryoBookingService/pkg/types"
)

var validate = validator.New()

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrValidation)
	}

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if len(req.PatientName) > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patient name longer than %d characters", ErrValidation, domain.MaxPatientNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrValidation, domain.MaxNotesLength)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time slot %q", ErrValidation, req.TimeSlot)
	}

	// Слот должен входить в шаблон расписания, произвольное время не принимается
	if !isTemplateSlot(req.TimeSlot) {
		return fmt.Errorf("%w: time slot %q is outside the schedule", ErrValidation, req.TimeSlot)
	}

	if req.InitialStatus != domain.StatusPending && req.InitialStatus != domain.StatusConfirmed {
		return fmt.Errorf("%w: unsupported initial status %q", ErrValidation, req.InitialStatus)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	return nil
}

func isTemplateSlot(slot types.TimeString) bool {
	for _, s := range domain.DefaultScheduleTemplate() {
		if s == slot {
			return true
		}
	}
	return false
}
