package brochure_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	brochurepkg "github.com/tradingwalla/backend/internal/brochure"
	brochuremodel "github.com/tradingwalla/backend/internal/core/datamodel/brochure"
	"github.com/tradingwalla/backend/internal/transport"
)

type mockBrochureRepository struct {
	brochures   []*brochuremodel.Brochure
	createError error
	listError   error
}

func (m *mockBrochureRepository) Create(ctx context.Context, b *brochuremodel.Brochure) error {
	if m.createError != nil {
		return m.createError
	}
	b.ID = int64(len(m.brochures) + 1)
	b.CreatedAt = time.Now()
	m.brochures = append(m.brochures, b)
	return nil
}

func (m *mockBrochureRepository) ListAll(ctx context.Context) ([]*brochuremodel.Brochure, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.brochures, nil
}

var _ = Describe("BrochureHandler", func() {
	var (
		handler  *brochurepkg.Handler
		mockRepo *mockBrochureRepository
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		mockRepo = &mockBrochureRepository{}
		service := brochurepkg.NewService(mockRepo, logger)
		handler = brochurepkg.NewHandler(transport.NewBaseHandler(logger), service)
		recorder = httptest.NewRecorder()
	})

	Describe("Submit", func() {
		It("should answer 201 with the stored record", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/brochure/submit",
				strings.NewReader(`{"name":"Asha","email":"asha@example.com","phone":"9876543210","interest":"Options Trading"}`))

			handler.Submit(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var body map[string]interface{}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["success"]).To(BeTrue())
			Expect(body["message"]).To(Equal("Brochure request submitted successfully"))
			Expect(mockRepo.brochures).To(HaveLen(1))
		})

		It("should answer 400 when a required field is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/brochure/submit",
				strings.NewReader(`{"name":"Asha","email":"asha@example.com"}`))

			handler.Submit(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(mockRepo.brochures).To(BeEmpty())
		})

		It("should answer 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/brochure/submit",
				strings.NewReader(`{broken`))

			handler.Submit(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ListAll", func() {
		It("should return every stored request", func() {
			for _, interest := range []string{"Options Trading", "Mentorship"} {
				mockRepo.brochures = append(mockRepo.brochures, &brochuremodel.Brochure{
					Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Interest: interest,
				})
			}

			req := httptest.NewRequest(http.MethodGet, "/api/brochure/all", nil)
			handler.ListAll(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body struct {
				Success bool                      `json:"success"`
				Data    []*brochuremodel.Brochure `json:"data"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Success).To(BeTrue())
			Expect(body.Data).To(HaveLen(2))
		})
	})
})
