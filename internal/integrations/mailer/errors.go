package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда SMTP сервер не принял письмо
	ErrSendFailed = errors.New("mailer client: failed to send message")
)
