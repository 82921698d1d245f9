package forms_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	formmodel "github.com/tradingwalla/backend/internal/core/datamodel/formsubmission"
	formspkg "github.com/tradingwalla/backend/internal/forms"
)

type mockFormRepository struct {
	submissions []*formmodel.FormSubmission
	createError error
	listError   error
}

func (m *mockFormRepository) Create(ctx context.Context, f *formmodel.FormSubmission) error {
	if m.createError != nil {
		return m.createError
	}
	f.ID = int64(len(m.submissions) + 1)
	m.submissions = append(m.submissions, f)
	return nil
}

func (m *mockFormRepository) ListAll(ctx context.Context) ([]*formmodel.FormSubmission, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.submissions, nil
}

var _ = Describe("FormsService", func() {
	var (
		service  *formspkg.Service
		mockRepo *mockFormRepository
		ctx      context.Context
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		mockRepo = &mockFormRepository{}
		service = formspkg.NewService(mockRepo, logger)
		ctx = context.Background()
	})

	validRequest := func() *formspkg.SubmitRequest {
		return &formspkg.SubmitRequest{
			Name:     "Asha",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			FormType: "Mentorship",
		}
	}

	Describe("Submit", func() {
		It("should persist the submission and echo back id and timestamp", func() {
			resp, err := service.Submit(ctx, validRequest())

			Expect(err).ToNot(HaveOccurred())
			Expect(resp.ID).To(BeNumerically(">", 0))
			Expect(resp.FormType).To(Equal("Mentorship"))
			Expect(resp.SubmittedAt).ToNot(BeZero())
		})

		It("should store the whatsapp number only when present", func() {
			req := validRequest()
			req.Whatsapp = "9876543211"

			_, err := service.Submit(ctx, req)

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.submissions[0].Whatsapp).ToNot(BeNil())
			Expect(*mockRepo.submissions[0].Whatsapp).To(Equal("9876543211"))
		})

		It("should leave whatsapp nil when absent", func() {
			_, err := service.Submit(ctx, validRequest())

			Expect(err).ToNot(HaveOccurred())
			Expect(mockRepo.submissions[0].Whatsapp).To(BeNil())
		})

		It("should reject a submission without a form type", func() {
			req := validRequest()
			req.FormType = ""

			_, err := service.Submit(ctx, req)

			Expect(err).To(HaveOccurred())
			Expect(mockRepo.submissions).To(BeEmpty())
		})

		It("should return an internal error when the repository fails", func() {
			mockRepo.createError = errors.New("database down")

			_, err := service.Submit(ctx, validRequest())

			Expect(err).To(HaveOccurred())
		})
	})
})
