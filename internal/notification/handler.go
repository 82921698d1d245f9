package notification

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/tradingwalla/backend/internal/core/events"
)

// EventHandler turns domain events into outbound email. Everything here
// is best-effort: a delivery failure is logged by the bus and the
// originating request is long gone.
type EventHandler struct {
	mailer *Mailer
	logger *slog.Logger
}

func NewEventHandler(mailer *Mailer, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		mailer: mailer,
		logger: logger,
	}
}

func (h *EventHandler) RegisterHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeContactSubmitted, h.handleContactSubmitted)
	bus.Subscribe(events.EventTypePaymentCompleted, h.handlePaymentCompleted)
}

func (h *EventHandler) handleContactSubmitted(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.ContactSubmittedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	body := fmt.Sprintf(
		`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(e.Name),
		html.EscapeString(e.Email),
		html.EscapeString(e.Phone),
		html.EscapeString(e.Message),
	)

	if err := h.mailer.SendToAdmin(e.Subject, body); err != nil {
		return err
	}

	h.logger.Info("contact notification dispatched", "event_id", e.EventID())
	return nil
}

func (h *EventHandler) handlePaymentCompleted(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.PaymentCompletedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	body := fmt.Sprintf(
		`<h3>Payment Received</h3>
<p>Your payment of INR %.2f for %s has been confirmed.</p>
<p><strong>Transaction ID:</strong> %s</p>`,
		e.Amount,
		html.EscapeString(e.FormType),
		html.EscapeString(e.TxnID),
	)

	if err := h.mailer.Send(e.Email, "Payment Confirmation - Tradingwalla", body); err != nil {
		return err
	}

	h.logger.Info("payment confirmation dispatched", "txnid", e.TxnID)
	return nil
}
