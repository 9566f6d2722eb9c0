package create_appointment

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("invalid appointment data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается при дате в прошлом или некорректной дате
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrSlotTaken возвращается, когда слот уже занят активной записью
	ErrSlotTaken = errors.New("time slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
