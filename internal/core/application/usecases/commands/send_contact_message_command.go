package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

const (
	ContactNameMaxLength    = 200
	ContactSubjectMaxLength = 200
	ContactMessageMaxLength = 5000
)

var ErrSendContactMessageCommandIsNotConstructed = errors.New(
	"SendContactMessageCommand must be created via NewSendContactMessageCommand constructor",
)

// SendContactMessageCommand is a parsed contact-form submission.
type SendContactMessageCommand struct { //nolint:recvcheck //using for validation
	name    string
	email   kernel.Email
	subject string
	message string

	guard guard.ConstructorGuard
}

// NewSendContactMessageCommand returns an *errs.ValidationError naming every
// violated field.
func NewSendContactMessageCommand(name, email, subject, message string) (SendContactMessageCommand, error) {
	name, nameErr := kernel.RequiredText("name", name, ContactNameMaxLength)
	address, emailErr := kernel.NewEmail("email", email)
	subject, subjectErr := kernel.RequiredText("subject", subject, ContactSubjectMaxLength)
	message, messageErr := kernel.RequiredText("message", message, ContactMessageMaxLength)

	if err := errors.Join(nameErr, emailErr, subjectErr, messageErr); err != nil {
		return SendContactMessageCommand{}, errs.CollectValidationError(err)
	}

	return SendContactMessageCommand{
		name:    name,
		email:   address,
		subject: subject,
		message: message,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SendContactMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendContactMessageCommandIsNotConstructed)
}

func (c SendContactMessageCommand) Name() string {
	return c.name
}

func (c SendContactMessageCommand) Email() kernel.Email {
	return c.email
}

func (c SendContactMessageCommand) Subject() string {
	return c.subject
}

func (c SendContactMessageCommand) Message() string {
	return c.message
}
