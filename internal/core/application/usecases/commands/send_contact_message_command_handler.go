package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tours/internal/core/ports"
)

var ErrContactUnavailable = errors.New("contact messages are currently unavailable")

// ContactDispatcher sends contact-form emails. Implemented by notifications.Dispatcher.
type ContactDispatcher interface {
	AdminConfigured() bool
	DispatchContact(ctx context.Context, msg ports.ContactMessage) error
}

// SendContactMessageCommandHandler queues a contact-form email for the admin.
type SendContactMessageCommandHandler struct {
	dispatcher ContactDispatcher
	queue      ports.TaskQueue
	logger     *slog.Logger
}

func NewSendContactMessageCommandHandler(
	dispatcher ContactDispatcher,
	queue ports.TaskQueue,
	logger *slog.Logger,
) SendContactMessageCommandHandler {
	return SendContactMessageCommandHandler{
		dispatcher: dispatcher,
		queue:      queue,
		logger:     logger.With("component", "send_contact_message"),
	}
}

// Handle returns ErrContactUnavailable when no admin address is configured or
// the queue cannot accept the message.
func (h SendContactMessageCommandHandler) Handle(ctx context.Context, cmd SendContactMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !h.dispatcher.AdminConfigured() {
		return ErrContactUnavailable
	}

	msg := ports.ContactMessage{
		Name:    cmd.Name(),
		Email:   cmd.Email().String(),
		Subject: cmd.Subject(),
		Message: cmd.Message(),
	}
	err := h.queue.Submit("contact message from "+msg.Email, func(taskCtx context.Context) error {
		return h.dispatcher.DispatchContact(taskCtx, msg)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContactUnavailable, err)
	}

	h.logger.InfoContext(ctx, "contact message queued", "from", msg.Email)
	return nil
}
