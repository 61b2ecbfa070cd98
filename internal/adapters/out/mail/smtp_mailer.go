package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tours/internal/core/ports"

	gomail "github.com/wneessen/go-mail"
)

const DefaultTimeout = 15 * time.Second

var ErrSenderNotConfigured = errors.New("smtp sender is not configured")

// SMTPConfig holds the relay address and sender credentials. The username is
// also the From address.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPMailer implements ports.Mailer. Port 465 uses implicit TLS, every other
// port requires STARTTLS.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if m.cfg.Username == "" {
		return ErrSenderNotConfigured
	}

	message, err := m.message(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host, m.options()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) message(msg ports.MailMessage) (*gomail.Msg, error) {
	message := gomail.NewMsg()
	if err := message.From(m.cfg.Username); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := message.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("reply-to address: %w", err)
		}
	}
	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)
	return message, nil
}

func (m *SMTPMailer) options() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithTimeout(m.cfg.Timeout),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	}
	if m.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSLPort(false))
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}
	if m.cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(m.cfg.Port))
	}
	return opts
}
