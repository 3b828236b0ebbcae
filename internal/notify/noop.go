package notify

import (
	"context"
	"log/slog"

	"github.com/propertypasalo/backend/internal/domain"
)

// Noop is used when SMTP is not configured. It logs and drops every
// notification so the confirmation flow stays functional in local and
// test environments.
type Noop struct {
	log *slog.Logger
}

// NewNoop creates a Noop notifier.
func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{log: logger.With("component", "mailer")}
}

// ConfirmationReceived logs the would-be notification and succeeds.
func (n *Noop) ConfirmationReceived(ctx context.Context, inq domain.Inquiry) error {
	n.log.InfoContext(ctx, "operator notification skipped, smtp disabled",
		slog.String("inquiry_id", inq.ID.String()),
	)
	return nil
}
