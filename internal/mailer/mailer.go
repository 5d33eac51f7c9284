// Package mailer is the outbound notification boundary. Delivery is best
// effort: callers hand a message off and move on, failures only show up in
// logs and metrics.
package mailer

import (
	"context"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/melisaydin/shop-backend/internal/config"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// New returns an SMTP notifier when SMTP_HOST is configured, otherwise a
// log-only notifier so local runs work without a mail relay.
func New(cfg config.Config, log *slog.Logger) Notifier {
	if cfg.SMTPHost == "" {
		return &logNotifier{log: log}
	}
	return &smtpNotifier{cfg: cfg}
}

type smtpNotifier struct{ cfg config.Config }

func (n *smtpNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.SMTPFrom); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	client, err := gomail.NewClient(n.cfg.SMTPHost,
		gomail.WithPort(n.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.SMTPUser),
		gomail.WithPassword(n.cfg.SMTPPass),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

type logNotifier struct{ log *slog.Logger }

func (n *logNotifier) Send(_ context.Context, to, subject, _ string) error {
	n.log.Info("mail (not delivered, no SMTP configured)", "to", to, "subject", subject)
	return nil
}
