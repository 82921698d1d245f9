package notification_test

import (
	"context"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/tradingwalla/backend/internal"
	"github.com/tradingwalla/backend/internal/core/events"
	"github.com/tradingwalla/backend/internal/notification"
)

var _ = Describe("EventHandler", func() {
	var (
		bus    *events.EventBus
		logger *slog.Logger
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		bus = events.NewEventBus(logger)
	})

	Context("with no mail credentials configured", func() {
		It("should drop messages instead of failing", func() {
			// NewMailer returns nil when disabled; handlers must tolerate it
			mailer := notification.NewMailer(internal.EmailConfig{})
			Expect(mailer).To(BeNil())

			handler := notification.NewEventHandler(mailer, logger)
			handler.RegisterHandlers(bus)

			event := events.NewContactSubmittedEvent(
				"Asha", "asha@example.com", "9876543210", "Subject", "Message")

			Expect(bus.PublishSync(context.Background(), event)).To(Succeed())
		})
	})

	It("should reject an event with the wrong payload type", func() {
		handler := notification.NewEventHandler(nil, logger)
		handler.RegisterHandlers(bus)

		wrong := events.NewPaymentFailedEvent("TXN_1_abc", 100, "failure", "test")
		wrong.Type = events.EventTypeContactSubmitted

		err := bus.PublishSync(context.Background(), wrong)
		Expect(err).To(HaveOccurred())
	})
})
