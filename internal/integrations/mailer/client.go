package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Client SMTP клиент для отправки писем клиники
type Client struct {
	dialer *gomail.Dialer
	from   string
	log    Logger
}

// NewClient создает новый экземпляр SMTP клиента.
// from используется как адрес отправителя для всех писем.
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log,
	}
}

// Send отправляет HTML письмо одному получателю.
// Каждый вызов открывает отдельное SMTP соединение: объем почты клиники
// небольшой, пул соединений не нужен.
func (c *Client) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(msg); err != nil {
		c.log.Error("Send: failed to send mail to=%s, subject=%q: %v", to, subject, err)
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	c.log.Info("Send: mail sent to=%s, subject=%q", to, subject)
	return nil
}
