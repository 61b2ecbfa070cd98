package mail_test

import (
	"net"
	"testing"
	"time"

	"tours/internal/adapters/out/mail"
	"tours/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_RequiresSender(t *testing.T) {
	m := mail.NewSMTPMailer(mail.SMTPConfig{Host: "localhost", Port: 587})

	err := m.Send(t.Context(), ports.MailMessage{To: "ama@example.com", Subject: "hi", HTMLBody: "<p>hi</p>"})
	require.ErrorIs(t, err, mail.ErrSenderNotConfigured)
}

func TestSMTPMailer_RejectsInvalidRecipient(t *testing.T) {
	m := mail.NewSMTPMailer(mail.SMTPConfig{Host: "localhost", Port: 587, Username: "tours@example.com"})

	err := m.Send(t.Context(), ports.MailMessage{To: "not an address", Subject: "hi", HTMLBody: "<p>hi</p>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to address")
}

func TestSMTPMailer_ReportsUnreachableRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	m := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "tours@example.com",
		Password: "secret",
		Timeout:  time.Second,
	})

	err = m.Send(t.Context(), ports.MailMessage{To: "ama@example.com", Subject: "hi", HTMLBody: "<p>hi</p>"})
	require.Error(t, err)
}
