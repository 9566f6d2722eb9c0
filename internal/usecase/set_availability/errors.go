package set_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid availability data")

	// ErrUnknownPreset возвращается при неизвестном имени пресета
	ErrUnknownPreset = errors.New("unknown availability preset")

	// ErrClearFailed возвращается, когда не удалось очистить старый набор флагов
	ErrClearFailed = errors.New("failed to clear existing availability")

	// ErrWriteFailed возвращается, когда не удалось записать новый набор флагов
	ErrWriteFailed = errors.New("failed to write availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
