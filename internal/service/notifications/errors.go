package notifications

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSendFailed возвращается, когда письмо не удалось отправить
	ErrSendFailed = errors.New("failed to send notification")
)
