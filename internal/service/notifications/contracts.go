package notifications

// Mailer интерфейс SMTP клиента
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
