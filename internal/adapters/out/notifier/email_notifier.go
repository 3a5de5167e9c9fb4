// Package notifier delivers customer-facing notifications over SMTP.
// Sending is best-effort: failures are logged, never returned, so a flaky
// mail relay cannot fail the business operation that triggered the message.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"sendit/internal/core/ports"
)

// EmailConfig holds SMTP relay settings.
type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// EmailNotifier implements ports.Notifier over a plain SMTP relay.
type EmailNotifier struct {
	cfg    EmailConfig
	logger *slog.Logger
}

// NewEmailNotifier creates a notifier sending through the configured relay.
func NewEmailNotifier(cfg EmailConfig, logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		logger: logger.With("component", "email_notifier"),
	}
}

// NotifyStatusChanged tells the customer their delivery moved to a new status.
// When From equals Status the message is a reminder, not a transition.
func (n *EmailNotifier) NotifyStatusChanged(ctx context.Context, msg ports.StatusNotification) {
	subject := fmt.Sprintf("Your delivery %s is now %s", label(msg.OrderName, msg.DeliveryID), msg.Status)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour delivery %s (id %s) moved from %s to %s.\r\n\r\nSendIT",
		msg.CustomerName, label(msg.OrderName, msg.DeliveryID), msg.DeliveryID, msg.From, msg.Status,
	)
	if msg.From == msg.Status {
		subject = fmt.Sprintf("Your delivery %s is still %s", label(msg.OrderName, msg.DeliveryID), msg.Status)
		body = fmt.Sprintf(
			"Hi %s,\r\n\r\nYour delivery %s (id %s) is still %s.\r\n\r\nSendIT",
			msg.CustomerName, label(msg.OrderName, msg.DeliveryID), msg.DeliveryID, msg.Status,
		)
	}

	n.send(ctx, msg.CustomerEmail, subject, body,
		"delivery_id", msg.DeliveryID,
		"from", msg.From.String(), "status", msg.Status.String())
}

// NotifyDestinationChanged confirms a destination change to the customer.
func (n *EmailNotifier) NotifyDestinationChanged(ctx context.Context, msg ports.DestinationNotification) {
	subject := fmt.Sprintf("Destination updated for delivery %s", label(msg.OrderName, msg.DeliveryID))
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nThe drop-off location of your delivery %s (id %s) changed from %q to %q.\r\n\r\nSendIT",
		msg.CustomerName, label(msg.OrderName, msg.DeliveryID), msg.DeliveryID, msg.OldDropOff, msg.NewDropOff,
	)

	n.send(ctx, msg.CustomerEmail, subject, body,
		"delivery_id", msg.DeliveryID, "new_drop_off", msg.NewDropOff)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string, logAttrs ...any) {
	message := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := n.cfg.Host + ":" + n.cfg.Port
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(message)); err != nil {
		attrs := append([]any{"error", err, "to", to}, logAttrs...)
		n.logger.ErrorContext(ctx, "Failed to send notification email", attrs...)
		return
	}

	n.logger.InfoContext(ctx, "Notification email sent", append([]any{"to", to}, logAttrs...)...)
}

func label(orderName, deliveryID string) string {
	if orderName != "" {
		return orderName
	}
	return deliveryID
}
