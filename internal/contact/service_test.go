package contact_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	contactpkg "github.com/tradingwalla/backend/internal/contact"
	contactmodel "github.com/tradingwalla/backend/internal/core/datamodel/contact"
	"github.com/tradingwalla/backend/internal/core/events"
)

type mockContactRepository struct {
	contacts    []*contactmodel.Contact
	createError error
	listError   error
}

func (m *mockContactRepository) Create(ctx context.Context, c *contactmodel.Contact) error {
	if m.createError != nil {
		return m.createError
	}
	c.ID = int64(len(m.contacts) + 1)
	c.CreatedAt = time.Now()
	m.contacts = append(m.contacts, c)
	return nil
}

func (m *mockContactRepository) ListAll(ctx context.Context) ([]*contactmodel.Contact, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.contacts, nil
}

var _ = Describe("ContactService", func() {
	var (
		service  *contactpkg.Service
		mockRepo *mockContactRepository
		eventBus *events.EventBus
		ctx      context.Context
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		mockRepo = &mockContactRepository{}
		eventBus = events.NewEventBus(logger)
		service = contactpkg.NewService(mockRepo, eventBus, logger)
		ctx = context.Background()
	})

	validRequest := func() *contactpkg.SubmitRequest {
		return &contactpkg.SubmitRequest{
			Name:    "Asha",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Message: "I would like to know more about the mentorship program.",
		}
	}

	Describe("Submit", func() {
		It("should persist the message", func() {
			record, err := service.Submit(ctx, validRequest())

			Expect(err).ToNot(HaveOccurred())
			Expect(record.ID).To(BeNumerically(">", 0))
			Expect(mockRepo.contacts).To(HaveLen(1))
		})

		It("should default the subject when none is given", func() {
			record, err := service.Submit(ctx, validRequest())

			Expect(err).ToNot(HaveOccurred())
			Expect(record.Subject).To(Equal("Contact Form Submission"))
		})

		It("should keep a caller-supplied subject", func() {
			req := validRequest()
			req.Subject = "Question about pricing"

			record, err := service.Submit(ctx, req)

			Expect(err).ToNot(HaveOccurred())
			Expect(record.Subject).To(Equal("Question about pricing"))
		})

		It("should publish a contact.submitted event", func() {
			received := make(chan events.Event, 1)
			eventBus.Subscribe(events.EventTypeContactSubmitted, func(ctx context.Context, event events.Event) error {
				received <- event
				return nil
			})

			_, err := service.Submit(ctx, validRequest())
			Expect(err).ToNot(HaveOccurred())

			Eventually(received).Should(Receive())
		})

		It("should reject a message without an email", func() {
			req := validRequest()
			req.Email = ""

			_, err := service.Submit(ctx, req)

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.contacts).To(BeEmpty())
		})

		It("should return an internal error when the repository fails", func() {
			mockRepo.createError = errors.New("database down")

			_, err := service.Submit(ctx, validRequest())

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ListAll", func() {
		It("should return the stored messages", func() {
			_, err := service.Submit(ctx, validRequest())
			Expect(err).ToNot(HaveOccurred())

			contacts, err := service.ListAll(ctx)

			Expect(err).ToNot(HaveOccurred())
			Expect(contacts).To(HaveLen(1))
		})
	})
})
