package ports

import "context"

// MailMessage is a rendered HTML email.
type MailMessage struct {
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Mailer hands messages to an outbound mail relay.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
