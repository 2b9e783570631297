package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"farn/config"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

// Message is an outbound mail with a single file attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	AttachmentName string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailerImpl struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
}

// New builds a Mailer bound to the configured relay. Credentials and relay
// address are captured here, never read from the environment per call.
func New(cfg *config.Config) Mailer {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	dialer.TLSConfig = &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         cfg.SMTP.Host,
	}

	return &mailerImpl{
		dialer:  dialer,
		from:    cfg.SMTP.From,
		timeout: time.Duration(cfg.SMTP.TimeoutSeconds) * time.Second,
	}
}

// Send dials the relay, upgrades to TLS, authenticates and transmits. The
// whole exchange is bounded by the configured timeout; gomail has no
// context support, so the dial-and-send runs in its own goroutine.
func (m *mailerImpl) Send(ctx context.Context, msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if msg.AttachmentPath != "" {
		name := msg.AttachmentName
		if name == "" {
			name = "attachment"
		}

		mail.Attach(msg.AttachmentPath, gomail.Rename(name))
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- m.dialer.DialAndSend(mail)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Str("to", msg.To).Msg("Failed to send email")

			return fmt.Errorf("failed to send email: %w", err)
		}

		log.Info().Str("to", msg.To).Str("host", m.dialer.Host).Msg("Email sent")

		return nil
	case <-ctx.Done():
		log.Error().Err(ctx.Err()).Str("to", msg.To).Msg("Email send timed out")

		return fmt.Errorf("email send timed out: %w", ctx.Err())
	}
}
