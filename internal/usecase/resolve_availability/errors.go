package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно.
	// В этом случае расписание НЕ считается полностью открытым: ошибка
	// поднимается наверх вместо выдачи свободных слотов.
	ErrStoreUnavailable = errors.New("availability store unavailable")
)
