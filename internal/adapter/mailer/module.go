package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/treadworks/orderflow/internal/config"
	"github.com/treadworks/orderflow/internal/notify"
)

// Module provides the Notifier implementation.
var Module = fx.Provide(newNotifier)

// newNotifier picks the transport. Without an SMTP host configured, e.g.
// local development, messages go to the log only.
func newNotifier(cfg *config.Config, logger *slog.Logger) notify.Notifier {
	if cfg.SMTPHost == "" {
		return NewLogNotifier(logger)
	}
	return NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailSender, logger)
}
