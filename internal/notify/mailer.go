// Package notify delivers operator notifications over SMTP.
package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/propertypasalo/backend/internal/config"
	"github.com/propertypasalo/backend/internal/domain"
)

// Mailer sends operator emails through an SMTP relay.
type Mailer struct {
	log *slog.Logger
	cfg config.SMTPConfig
}

// NewMailer creates a Mailer from config.
func NewMailer(logger *slog.Logger, cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		log: logger.With("component", "mailer"),
		cfg: cfg,
	}
}

// ConfirmationReceived emails the operator that an inquiry was confirmed
// through the messenger bot. The inquiry carries its pre-confirmation
// status, which doubles as the inquiry type in the subject line.
func (m *Mailer) ConfirmationReceived(ctx context.Context, inq domain.Inquiry) error {
	subject := fmt.Sprintf("✅ CONFIRMED: New %s from %s", inq.Status, inq.FullName())
	body := confirmationBody(inq)

	if err := m.send(ctx, subject, body); err != nil {
		return fmt.Errorf("notify.ConfirmationReceived: %w", err)
	}

	m.log.InfoContext(ctx, "operator notification sent",
		slog.String("inquiry_id", inq.ID.String()),
	)

	return nil
}

func (m *Mailer) send(ctx context.Context, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Property Pasalo Alerts", m.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.cfg.OperatorAddr); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

func confirmationBody(inq domain.Inquiry) string {
	var b strings.Builder
	b.WriteString("<h2>New Confirmed Inquiry!</h2>\n")
	b.WriteString("<p>The user has successfully engaged with the Messenger bot.</p>\n")
	writeField(&b, "Type", inq.Status.String())
	writeField(&b, "Name", inq.FullName())
	writeField(&b, "Email", orNA(inq.Email))
	writeField(&b, "Phone", orNA(inq.Phone))
	writeField(&b, "Interested In", orNA(inq.InterestedProperty))
	writeField(&b, "Listing ID", orNA(inq.ListingID))
	writeField(&b, "Next Step", "Review in your Admin Portal and follow up.")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
