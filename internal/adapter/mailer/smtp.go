package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/treadworks/orderflow/internal/notify"
)

// SMTPNotifier delivers notifications over SMTP with STARTTLS.
type SMTPNotifier struct {
	dialer        *gomail.Dialer
	defaultSender string
	logger        *slog.Logger
}

// NewSMTPNotifier creates an SMTP-backed notifier.
func NewSMTPNotifier(host string, port int, user, password, defaultSender string, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:        gomail.NewDialer(host, port, user, password),
		defaultSender: defaultSender,
		logger:        logger,
	}
}

// Send delivers the message, honoring context cancellation before dialing.
func (n *SMTPNotifier) Send(ctx context.Context, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = n.defaultSender
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.Attachment != nil {
		data := msg.Attachment.Data
		m.Attach(msg.Attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(data))
			return err
		}))
	}

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("smtp send failed",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	n.logger.Info("notification sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}

// LogNotifier records messages instead of sending them. Used when no SMTP
// server is configured, e.g. local development.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the message and reports success.
func (n *LogNotifier) Send(_ context.Context, msg notify.Message) error {
	n.logger.Info("notification (log only)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
